// Package config provides YAML/TOML configuration loading for the puzzle:
// board sizes, animation, picture content, colors and key bindings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid")

// PuzzleConfig contains all configuration for the sliding puzzle.
type PuzzleConfig struct {
	Board     BoardConfig     `yaml:"board" toml:"board"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Content   ContentConfig   `yaml:"content" toml:"content"`
	Theme     ThemeConfig     `yaml:"theme" toml:"theme"`
	Keys      KeysConfig      `yaml:"keys" toml:"keys"`
}

// BoardConfig defines grid sizes and shuffling.
type BoardConfig struct {
	Size              int `yaml:"size" toml:"size"`
	SizeMin           int `yaml:"size_min" toml:"size_min"`
	SizeMax           int `yaml:"size_max" toml:"size_max"`
	SizeStep          int `yaml:"size_step" toml:"size_step"`
	ShuffleIterations int `yaml:"shuffle_iterations" toml:"shuffle_iterations"`
}

// AnimationConfig defines the tile add/remove sweep.
type AnimationConfig struct {
	Enabled    bool `yaml:"enabled" toml:"enabled"`
	DurationMs int  `yaml:"duration_ms" toml:"duration_ms"`
}

// Duration returns the sweep length.
func (a AnimationConfig) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}

// ContentConfig defines where back-side pictures come from.
type ContentConfig struct {
	Dir      string `yaml:"dir" toml:"dir"`           // Picture directory, ~ allowed
	Builtins bool   `yaml:"builtins" toml:"builtins"` // Include procedural pictures
	Shuffle  bool   `yaml:"shuffle" toml:"shuffle"`   // Random picture order
	Watch    bool   `yaml:"watch" toml:"watch"`       // Pick up new files while running
}

// ThemeConfig names the colors used by the board. Values are color names
// such as "bright-blue".
type ThemeConfig struct {
	Tile      string `yaml:"tile" toml:"tile"`
	TileText  string `yaml:"tile_text" toml:"tile_text"`
	Frame     string `yaml:"frame" toml:"frame"`
	Solved    string `yaml:"solved" toml:"solved"`
	StatusBar string `yaml:"status_bar" toml:"status_bar"`
}

// Theme is a ThemeConfig with resolved colors.
type Theme struct {
	Tile      core.Color
	TileText  core.Color
	Frame     core.Color
	Solved    core.Color
	StatusBar core.Color
}

// Resolve converts the color names to colors.
func (t ThemeConfig) Resolve() (Theme, error) {
	var theme Theme
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"tile", t.Tile, &theme.Tile},
		{"tile_text", t.TileText, &theme.TileText},
		{"frame", t.Frame, &theme.Frame},
		{"solved", t.Solved, &theme.Solved},
		{"status_bar", t.StatusBar, &theme.StatusBar},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.value)
		if !ok {
			return Theme{}, fmt.Errorf("%w: theme.%s: unknown color %q", ErrInvalidConfig, f.name, f.value)
		}
		*f.dst = c
	}
	return theme, nil
}

// KeysConfig lists the keys bound to each action, in bubbletea key names
// ("left", "enter", "ctrl+c", ...).
type KeysConfig struct {
	Left      []string `yaml:"left" toml:"left"`
	Right     []string `yaml:"right" toml:"right"`
	Up        []string `yaml:"up" toml:"up"`
	Down      []string `yaml:"down" toml:"down"`
	Shuffle   []string `yaml:"shuffle" toml:"shuffle"`
	Flip      []string `yaml:"flip" toml:"flip"`
	Animation []string `yaml:"animation" toml:"animation"`
	Grow      []string `yaml:"grow" toml:"grow"`
	Shrink    []string `yaml:"shrink" toml:"shrink"`
	Help      []string `yaml:"help" toml:"help"`
	Quit      []string `yaml:"quit" toml:"quit"`
}

// Bindings returns the keys for every bindable action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionLeft:      k.Left,
		core.ActionRight:     k.Right,
		core.ActionUp:        k.Up,
		core.ActionDown:      k.Down,
		core.ActionShuffle:   k.Shuffle,
		core.ActionFlip:      k.Flip,
		core.ActionAnimation: k.Animation,
		core.ActionGrow:      k.Grow,
		core.ActionShrink:    k.Shrink,
		core.ActionHelp:      k.Help,
		core.ActionQuit:      k.Quit,
	}
}

// Validate checks the settings that cannot be repaired at runtime.
func (c PuzzleConfig) Validate() error {
	b := c.Board
	switch {
	case b.SizeMin < 2:
		return fmt.Errorf("%w: board.size_min %d is below 2", ErrInvalidConfig, b.SizeMin)
	case b.SizeMax < b.SizeMin:
		return fmt.Errorf("%w: board.size_max %d is below size_min %d", ErrInvalidConfig, b.SizeMax, b.SizeMin)
	case b.SizeStep < 1:
		return fmt.Errorf("%w: board.size_step must be at least 1", ErrInvalidConfig)
	case b.Size < b.SizeMin || b.Size > b.SizeMax:
		return fmt.Errorf("%w: board.size %d is outside [%d, %d]", ErrInvalidConfig, b.Size, b.SizeMin, b.SizeMax)
	case b.ShuffleIterations < 0:
		return fmt.Errorf("%w: board.shuffle_iterations is negative", ErrInvalidConfig)
	case c.Animation.DurationMs < 0:
		return fmt.Errorf("%w: animation.duration_ms is negative", ErrInvalidConfig)
	}

	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}

	// A key may only trigger one action
	seen := make(map[string]core.Action)
	for action, keys := range c.Keys.Bindings() {
		for _, k := range keys {
			if other, dup := seen[k]; dup && other != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, other, action)
			}
			seen[k] = action
		}
	}
	return nil
}
