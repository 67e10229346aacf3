package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <file> <field>...",
	Short: "Print movie header fields",
	Long: `Print the value of one or more movie header fields. With one field
only the value is printed; with several each line is field=value.

Example:
  mvhd get movie.mov duration
  mvhd get movie.mov timeScale duration`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0], false)
		if err != nil {
			return err
		}
		defer f.Close()

		names := args[1:]
		for _, name := range names {
			v, err := getField(f.Header(), name)
			if err != nil {
				return err
			}
			if len(names) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
