package config

import (
	_ "embed"
)

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the default puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Board: BoardConfig{
			Size:              4,
			SizeMin:           2,
			SizeMax:           10,
			SizeStep:          1,
			ShuffleIterations: 10,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			DurationMs: 1000,
		},
		Content: ContentConfig{
			Dir:      "~/.slide/pictures",
			Builtins: true,
			Shuffle:  true,
			Watch:    true,
		},
		Theme: ThemeConfig{
			Tile:      "blue",
			TileText:  "bright-white",
			Frame:     "gray",
			Solved:    "bright-green",
			StatusBar: "bright-cyan",
		},
		Keys: KeysConfig{
			Left:      []string{"left", "a", "h"},
			Right:     []string{"right", "d", "l"},
			Up:        []string{"up", "w", "k"},
			Down:      []string{"down", "s", "j"},
			Shuffle:   []string{"enter", "r"},
			Flip:      []string{"f"},
			Animation: []string{"n"},
			Grow:      []string{"+", "="},
			Shrink:    []string{"-", "_"},
			Help:      []string{"?"},
			Quit:      []string{"q", "esc", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPuzzleYAML
}
