package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-mvhd/internal/config"
	"github.com/robert-malhotra/go-mvhd/movie"
)

var (
	cfgFile string
	verbose bool
	cfg     = config.DefaultConfig()
	logger  = log.New(io.Discard, "mvhd: ", 0)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mvhd",
	Short: "Inspect and edit QuickTime movie headers",
	Long: `mvhd reads the movie header (mvhd atom) of a QuickTime file and
rewrites individual fields in place. The rest of the file is never touched.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().Int("head-window", config.DefaultConfig().HeadWindow, "bytes searched at the start of the file")
	rootCmd.PersistentFlags().Int("tail-window", config.DefaultConfig().TailWindow, "bytes searched at the end of the file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log header search details to stderr")
}

// loadConfig reads the config file, then applies flags given on the command line.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" && config.Exists(config.DefaultConfigPath()) {
		path = config.DefaultConfigPath()
	}

	cfg = config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("head-window") {
		cfg.HeadWindow, _ = flags.GetInt("head-window")
	}
	if flags.Changed("tail-window") {
		cfg.TailWindow, _ = flags.GetInt("tail-window")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if verbose || cfg.Debug() {
		logger.SetOutput(cmd.ErrOrStderr())
	} else {
		logger.SetOutput(io.Discard)
	}
	if path != "" {
		logger.Printf("using config %s", path)
	}
	return nil
}

func movieOptions() []movie.Option {
	return []movie.Option{
		movie.WithHeadWindow(cfg.HeadWindow),
		movie.WithTailWindow(cfg.TailWindow),
		movie.WithLogger(logger),
	}
}

func openMovie(path string, writable bool) (*movie.File, error) {
	open := movie.Open
	if writable {
		open = movie.OpenReadWrite
	}
	f, err := open(path, movieOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("%s: header at %d, read from %s", path, f.Offset(), f.Window())
	return f, nil
}
