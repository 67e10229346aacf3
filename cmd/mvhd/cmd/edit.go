package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-mvhd/movie"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a movie header interactively",
	Long: `Open a file and read commands from standard input. Edits stay in
memory until 'write'. Type 'help' for the command list.

Example:
  mvhd edit movie.mov`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0], true)
		if err != nil {
			return err
		}
		defer f.Close()

		out := cmd.OutOrStdout()
		secs, err := f.Header().DurationSeconds()
		if err == nil {
			fmt.Fprintf(out, "Opened %s (duration %ss)\n", f.Path(), formatSeconds(secs))
		} else {
			fmt.Fprintf(out, "Opened %s\n", f.Path())
		}
		fmt.Fprintln(out, "Type commands. 'help' for information or 'exit' to quit.")
		return runSession(cmd.InOrStdin(), out, f)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

const sessionHelp = `commands:
  show                  print every field
  get <field>           print one field
  set <field> <value>   change one field
  seconds [n]           print or set the duration in seconds
  write                 write changes to the file
  exit                  quit, discarding unwritten changes
`

// runSession executes edit commands read from in until exit or end of input.
func runSession(in io.Reader, out io.Writer, f *movie.File) error {
	reader := bufio.NewReader(in)
	dirty := false

	for {
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			fmt.Fprintln(out)
			if err == io.EOF {
				err = nil
			}
			if dirty {
				fmt.Fprintln(out, "discarding unwritten changes")
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		words, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintln(out, "parse error:", err)
			continue
		}

		h := f.Header()
		switch cmd, args := words[0], words[1:]; {
		case cmd == "exit" || cmd == "quit":
			if dirty {
				fmt.Fprintln(out, "discarding unwritten changes")
			}
			return nil
		case cmd == "help":
			fmt.Fprint(out, sessionHelp)
		case cmd == "show" && len(args) == 0:
			err = writeHeader(out, f, "text")
		case cmd == "get" && len(args) == 1:
			var v string
			if v, err = getField(h, args[0]); err == nil {
				fmt.Fprintln(out, v)
			}
		case cmd == "set" && len(args) == 2:
			if err = setField(h, args[0], args[1]); err == nil {
				dirty = true
			}
		case cmd == "seconds" && len(args) == 0:
			var secs float64
			if secs, err = h.DurationSeconds(); err == nil {
				fmt.Fprintln(out, formatSeconds(secs))
			}
		case cmd == "seconds" && len(args) == 1:
			if err = setSeconds(h, args[0]); err == nil {
				dirty = true
				fmt.Fprintf(out, "duration %d\n", h.Duration())
			}
		case cmd == "write" && len(args) == 0:
			if err = f.Flush(); err == nil {
				dirty = false
				fmt.Fprintf(out, "wrote %d bytes at %d\n", h.Len(), f.Offset())
			}
		default:
			err = fmt.Errorf("unknown command %q, type 'help'", line)
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}
