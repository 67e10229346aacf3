package cmd

import (
	"github.com/spf13/cobra"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <file> <field>=<value>...",
	Short: "Rewrite movie header fields in place",
	Long: `Rewrite one or more movie header fields. Values are parsed by the
field's codec: integers accept 0x prefixes, fixed-point fields take decimals
and raw fields take hex. Nothing is written unless every value parses.

Example:
  mvhd set movie.mov duration=9000
  mvhd set movie.mov preferredRate=1.5 preferredVolume=0.5`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0], true)
		if err != nil {
			return err
		}
		defer f.Close()

		for _, arg := range args[1:] {
			name, value, err := splitAssignment(arg)
			if err != nil {
				return err
			}
			if err := setField(f.Header(), name, value); err != nil {
				return err
			}
			logger.Printf("set %s=%s", name, value)
		}
		return f.Flush()
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
