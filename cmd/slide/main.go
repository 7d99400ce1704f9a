// slide is a sliding tile puzzle for the terminal.
//
// Usage:
//
//	slide play               - Play the puzzle
//	slide serve              - Start SSH server for remote play
//	slide records            - Show the best solved rounds
//	slide pictures           - List back-side pictures
//	slide config             - Print or check a configuration file
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible shuffles
//	--db <path>      - Set database path (default: ~/.slide/records.db)
//	--config <path>  - Use a specific puzzle configuration
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"

	// Import pictures to register them
	_ "github.com/vovakirdan/tui-slide/internal/pictures"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - the 15 puzzle in your terminal",
	Long: `Slide is a sliding tile puzzle for the terminal. Tiles are numbered on
the front and carry a picture on the back; flip them to solve by picture.

Available commands:
  play      - Play the puzzle
  serve     - Start SSH server for remote play
  records   - View the best solved rounds
  pictures  - List back-side pictures
  config    - Print or check a configuration file

Examples:
  slide play
  slide play --size 5
  slide serve --ssh :2222
  slide records --size 4`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to puzzle config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(picturesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the puzzle configuration or exits.
func loadConfig() config.PuzzleConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogger returns a logger writing to --log, or fallback when unset.
// The returned closer must be called on exit.
func openLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.NewWithOptions(fallback, log.Options{
			ReportTimestamp: true,
			Prefix:          prefix,
		}), func() {}
	}

	path, err := homedir.Expand(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
