package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/resource"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagSize        string
	flagPictures    string
	flagNoAnimation bool
	flagCheck       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start a puzzle in the terminal.

Controls:
  Arrows/WASD/HJKL  - Slide a tile into the gap
  Mouse click       - Slide the clicked tile
  Enter/R           - New puzzle
  F                 - Flip tiles to the picture side
  N                 - Toggle the shuffle animation
  +/-               - Bigger or smaller board for the next puzzle
  ?                 - Full help
  Q/Esc/Ctrl+C      - Quit

Examples:
  slide play
  slide play --size 5
  slide play --pictures ~/my-pictures
  slide play --no-animation --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSize, "size", "", "Board size (overrides config)")
	playCmd.Flags().StringVar(&flagPictures, "pictures", "", "Picture directory (overrides config)")
	playCmd.Flags().BoolVar(&flagNoAnimation, "no-animation", false, "Disable the shuffle animation")
	playCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the board after every tick (debug)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagPictures != "" {
		cfg.Content.Dir = flagPictures
	}
	if flagNoAnimation {
		cfg.Animation.Enabled = false
	}

	// The board owns the terminal, so logs only go to --log
	logger, closeLog := openLogger(io.Discard, "slide")
	defer closeLog()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	libOpts := resource.LibraryOptions{
		Dir:      cfg.Content.Dir,
		Builtins: cfg.Content.Builtins,
		Logger:   logger,
	}
	if cfg.Content.Shuffle {
		libOpts.Rand = rand.New(rand.NewSource(runtime.Seed))
	}
	lib, err := resource.NewLibrary(ctx, libOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Content.Watch {
		go func() {
			if err := lib.Watch(ctx); err != nil {
				logger.Warn("picture watcher stopped", "error", err)
			}
		}()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sess, err := tui.NewSession(ctx, tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Store:   store,
		Library: lib,
		Logger:  logger,
		Player:  playerName(),
		Bell:    true,
		Check:   flagCheck,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSize != "" {
		sess.Controller().RequestSizeText(flagSize)
	}

	if err := tui.Run(sess, tui.NewKeyMap(cfg.Keys)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if r, ok := sess.LastSolved(); ok {
		fmt.Printf("Last solved: %dx%d in %d moves (%s)\n", r.Size, r.Size, r.Moves, r.PlayTime.Round(time.Second))
	}
}

// playerName returns the local user name stored with records.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
