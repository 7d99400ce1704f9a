package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/resource"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the puzzle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own puzzle. Records are stored per-server
(all users share the same records) and tagged with the SSH user name.
Pictures are loaded once and shared by all connections.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.slide/host_key

Examples:
  slide serve                           # Listen on :23235 with auto-generated key
  slide serve --ssh :2222               # Listen on port 2222
  slide serve --host-key ./my_host_key  # Use specific host key
  slide serve --db ./records.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	puzzle := loadConfig()

	logger, closeLog := openLogger(os.Stderr, "slide-ssh")
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	libOpts := resource.LibraryOptions{
		Dir:      puzzle.Content.Dir,
		Builtins: puzzle.Content.Builtins,
		Logger:   logger,
	}
	if puzzle.Content.Shuffle {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		libOpts.Rand = rand.New(rand.NewSource(seed))
	}
	lib, err := resource.NewLibrary(ctx, libOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if puzzle.Content.Watch {
		go func() {
			if err := lib.Watch(ctx); err != nil {
				logger.Warn("picture watcher stopped", "error", err)
			}
		}()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Puzzle = puzzle
	cfg.Library = lib
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting slide SSH server on %s\n", cfg.Address)
	fmt.Printf("Pictures: %d\n", lib.Len())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
