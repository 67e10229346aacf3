package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-mvhd/internal/config"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print every movie header field",
	Long: `Print every movie header field with its offset, codec and value,
followed by the duration in seconds.

Example:
  mvhd show movie.mov
  mvhd show --output yaml movie.mov`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0], false)
		if err != nil {
			return err
		}
		defer f.Close()

		format := cfg.Output
		if cmd.Flags().Changed("output") {
			format, _ = cmd.Flags().GetString("output")
		}
		if format != config.OutputText && format != config.OutputYAML {
			return fmt.Errorf("unknown output format %q", format)
		}
		return writeHeader(cmd.OutOrStdout(), f, format)
	},
}

func init() {
	showCmd.Flags().StringP("output", "o", "text", "output format (text or yaml)")
	rootCmd.AddCommand(showCmd)
}
