package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"
)

var (
	flagConfigFormat   string
	flagConfigDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check a configuration file",
	Long: `Print the configuration the puzzle would use, or check a file.

Without arguments the effective configuration (see --config) is printed.
With a path argument the file is parsed and validated.

Examples:
  slide config
  slide config --defaults --format toml > ~/.slide/configs/puzzle.toml
  slide config ./puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		cfg, err := config.Load(args[0])
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", args[0])
		return
	}

	var format config.Format
	switch flagConfigFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagConfigFormat)
		os.Exit(1)
	}

	cfg := config.DefaultPuzzleConfig()
	source := "builtin"
	if !flagConfigDefaults {
		var err error
		cfg, source, err = config.LoadWithSource(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	os.Stdout.Write(data)
}
