package controller

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// Options configures a Controller.
type Options struct {
	Size              int           // Initial grid size
	Sizes             SizeRange     // Range for size requests
	ShuffleIterations int           // Outer shuffle passes per grid
	AnimationDuration time.Duration // Length of the add/remove sweep
	Animation         bool          // Whether the sweep runs at all

	Rand   *rand.Rand  // Shuffle randomness; seeded from the clock if nil
	Logger *log.Logger // Discarded if nil

	// OnSolved is called once when a round's grid becomes solved.
	OnSolved func(Round)
	// OnTransition is called after every state change.
	OnTransition func(from, to State)
}

// DefaultOptions returns the classic 4x4 setup.
func DefaultOptions() Options {
	return Options{
		Size:              4,
		Sizes:             DefaultSizeRange(),
		ShuffleIterations: 10,
		AnimationDuration: time.Second,
		Animation:         true,
	}
}

// GridView is the read-only view of the active grid handed to presentation.
type GridView interface {
	Size() int
	Blank() int
	EmptyCell() puzzle.Position
	Tile(row, column int) puzzle.Tile
	Solved() bool
}

// Controller is the round state machine. It owns at most one grid at a time.
type Controller struct {
	opts   Options
	res    Resources
	rng    *rand.Rand
	logger *log.Logger
	newID  func() string

	state     State
	grid      *puzzle.Grid
	anim      *puzzle.Animation
	selected  int
	size      int // Size used for the next grid build
	side      Side
	animation bool
	round     Round
}

// New creates a controller in StateLoadingStatic.
func New(res Resources, opts Options) *Controller {
	opts.Sizes = opts.Sizes.normalized()
	if opts.Size == 0 {
		opts.Size = DefaultOptions().Size
	}

	c := &Controller{
		opts:      opts,
		res:       res,
		rng:       opts.Rand,
		logger:    opts.Logger,
		newID:     newRoundID,
		state:     StateLoadingStatic,
		size:      opts.Sizes.Clamp(opts.Size),
		animation: opts.Animation,
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Grid returns the active grid, or nil between rounds.
func (c *Controller) Grid() GridView {
	if c.grid == nil {
		return nil
	}
	return c.grid
}

// AnimationFraction returns the progress of the running sweep in [0, 1].
// It is 1 while playing or solved and 0 before the first grid exists.
func (c *Controller) AnimationFraction() float64 {
	if c.anim != nil {
		return c.anim.Fraction()
	}
	if c.grid != nil {
		return 1.0
	}
	return 0.0
}

// SelectedContent returns the content index used for the current or next round.
func (c *Controller) SelectedContent() int {
	return c.selected
}

// Size returns the size the next grid will be built with.
func (c *Controller) Size() int {
	return c.size
}

// Side returns the tile face turned towards the player.
func (c *Controller) Side() Side {
	return c.side
}

// AnimationEnabled reports whether sweeps run for the next animation.
func (c *Controller) AnimationEnabled() bool {
	return c.animation
}

// Round returns the statistics of the current round.
func (c *Controller) Round() Round {
	return c.round
}

// Move forwards a directional slide to the grid. Moves are only accepted
// while playing. The back side is viewed from behind, mirrored, so left
// and right are swapped to keep the keys matching what the player sees.
func (c *Controller) Move(m puzzle.Move) bool {
	if c.state != StatePlaying {
		return false
	}
	if c.side == SideBack && (m == puzzle.MoveLeft || m == puzzle.MoveRight) {
		m = m.Inverse()
	}
	if !c.grid.Slide(m) {
		return false
	}
	c.round.Moves++
	return true
}

// SlideTile forwards a picked tile id to the grid while playing.
func (c *Controller) SlideTile(id int) bool {
	if c.state != StatePlaying {
		return false
	}
	if !c.grid.SlideTile(id) {
		return false
	}
	c.round.Moves++
	return true
}

// Shuffle ends the current round and starts the remove sweep.
// Accepted while playing or solved.
func (c *Controller) Shuffle() bool {
	if c.state != StatePlaying && c.state != StateSolved {
		return false
	}
	c.anim = c.grid.StartAnimation(puzzle.AnimationRemove, c.opts.AnimationDuration, c.animation)
	c.transition(StateExitAnimating)
	return true
}

// RequestSize sets the size of the next grid. Out-of-range requests are
// clamped and off-step requests are ignored. Returns the resulting size.
func (c *Controller) RequestSize(n int) int {
	c.size = c.opts.Sizes.Resolve(n, c.size)
	return c.size
}

// RequestSizeText is RequestSize for raw text from a size control.
func (c *Controller) RequestSizeText(text string) int {
	c.size = c.opts.Sizes.ParseSize(text, c.size)
	return c.size
}

// FlipSide turns the tiles over.
func (c *Controller) FlipSide() Side {
	if c.side == SideFront {
		c.side = SideBack
	} else {
		c.side = SideFront
	}
	return c.side
}

// SetAnimation enables or disables the sweeps. A running sweep is not affected.
func (c *Controller) SetAnimation(enabled bool) {
	c.animation = enabled
}

// Dispatch applies a single player action.
// Returns true if the action changed controller or grid state.
func (c *Controller) Dispatch(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return c.Move(puzzle.MoveLeft)
	case core.ActionRight:
		return c.Move(puzzle.MoveRight)
	case core.ActionDown:
		return c.Move(puzzle.MoveDown)
	case core.ActionUp:
		return c.Move(puzzle.MoveUp)
	case core.ActionShuffle:
		return c.Shuffle()
	case core.ActionFlip:
		c.FlipSide()
		return true
	case core.ActionAnimation:
		c.SetAnimation(!c.animation)
		return true
	case core.ActionGrow:
		before := c.size
		return c.RequestSize(c.size+c.opts.Sizes.Step) != before
	case core.ActionShrink:
		before := c.size
		return c.RequestSize(c.size-c.opts.Sizes.Step) != before
	default:
		return false
	}
}

// Apply dispatches every action and pick collected in a frame, in order.
func (c *Controller) Apply(in core.InputFrame) {
	for _, a := range in.Actions {
		c.Dispatch(a)
	}
	for _, id := range in.Picks {
		c.SlideTile(id)
	}
}

// Step applies the frame's input and then advances one tick.
func (c *Controller) Step(in core.InputFrame, dt time.Duration) State {
	c.Apply(in)
	return c.Update(dt)
}
