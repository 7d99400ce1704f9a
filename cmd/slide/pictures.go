package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/resource"
)

var picturesCmd = &cobra.Command{
	Use:   "pictures",
	Short: "List back-side pictures",
	Long: `Shows the built-in pictures and the picture files found in the
configured picture directory, in the order the puzzle cycles through them
(before any shuffle).

Examples:
  slide pictures
  slide pictures --config ./puzzle.toml`,
	Run: runPictures,
}

func runPictures(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	lib, err := resource.NewLibrary(context.Background(), resource.LibraryOptions{
		Dir:      cfg.Content.Dir,
		Builtins: cfg.Content.Builtins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries := lib.Entries()
	if len(entries) == 0 {
		fmt.Println("No pictures available.")
		return
	}

	fmt.Println("Available pictures:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Source")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "------")
	for _, e := range entries {
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, e.ID, e.Title, e.Source)
	}

	fmt.Println()
	fmt.Printf("Add .yaml pictures to %s to extend the list.\n", cfg.Content.Dir)
}
