package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// durationCmd represents the duration command
var durationCmd = &cobra.Command{
	Use:   "duration <file> [seconds]",
	Short: "Print or set the movie duration in seconds",
	Long: `Without seconds, print the duration divided by the time scale. With
seconds, store seconds times the time scale, rounded to the nearest tick.

Example:
  mvhd duration movie.mov
  mvhd duration movie.mov 15`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0], len(args) == 2)
		if err != nil {
			return err
		}
		defer f.Close()

		h := f.Header()
		if len(args) == 2 {
			if err := setSeconds(h, args[1]); err != nil {
				return err
			}
			if err := f.Flush(); err != nil {
				return err
			}
		}

		secs, err := h.DurationSeconds()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatSeconds(secs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(durationCmd)
}
