package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
)

// KeyMap defines the key bindings for the puzzle.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Shuffle   key.Binding
	Flip      key.Binding
	Animation key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shuffle, k.Flip, k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Shuffle, k.Flip, k.Animation},
		{k.Grow, k.Shrink, k.Help, k.Quit},
	}
}

var actionHelp = map[core.Action]string{
	core.ActionLeft:      "slide left",
	core.ActionRight:     "slide right",
	core.ActionUp:        "slide up",
	core.ActionDown:      "slide down",
	core.ActionShuffle:   "new puzzle",
	core.ActionFlip:      "flip tiles",
	core.ActionAnimation: "toggle animation",
	core.ActionGrow:      "bigger next",
	core.ActionShrink:    "smaller next",
	core.ActionHelp:      "help",
	core.ActionQuit:      "quit",
}

func newBinding(action core.Action, keys []string) key.Binding {
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), actionHelp[action]),
	)
	if len(keys) == 0 {
		b.SetEnabled(false)
	}
	return b
}

// NewKeyMap builds the bindings from configuration.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	b := cfg.Bindings()
	return KeyMap{
		Left:      newBinding(core.ActionLeft, b[core.ActionLeft]),
		Right:     newBinding(core.ActionRight, b[core.ActionRight]),
		Up:        newBinding(core.ActionUp, b[core.ActionUp]),
		Down:      newBinding(core.ActionDown, b[core.ActionDown]),
		Shuffle:   newBinding(core.ActionShuffle, b[core.ActionShuffle]),
		Flip:      newBinding(core.ActionFlip, b[core.ActionFlip]),
		Animation: newBinding(core.ActionAnimation, b[core.ActionAnimation]),
		Grow:      newBinding(core.ActionGrow, b[core.ActionGrow]),
		Shrink:    newBinding(core.ActionShrink, b[core.ActionShrink]),
		Help:      newBinding(core.ActionHelp, b[core.ActionHelp]),
		Quit:      newBinding(core.ActionQuit, b[core.ActionQuit]),
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultPuzzleConfig().Keys)
}

// Action translates a key message to an action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Shuffle):
		return core.ActionShuffle
	case key.Matches(msg, k.Flip):
		return core.ActionFlip
	case key.Matches(msg, k.Animation):
		return core.ActionAnimation
	case key.Matches(msg, k.Grow):
		return core.ActionGrow
	case key.Matches(msg, k.Shrink):
		return core.ActionShrink
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
