package controller

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

func newRoundID() string {
	return uuid.NewString()
}

// Update advances the state machine by one tick of length dt and returns
// the resulting state. At most one transition happens per call.
func (c *Controller) Update(dt time.Duration) State {
	switch c.state {
	case StateLoadingStatic:
		c.stepLoadingStatic()
	case StateSelectContent:
		c.stepSelectContent()
	case StateWaitContent:
		c.stepWaitContent()
	case StateEnterAnimating:
		c.stepEnterAnimating(dt)
	case StatePlaying:
		c.stepPlaying(dt)
	case StateSolved:
		// Waits for Shuffle
	case StateExitAnimating:
		c.stepExitAnimating(dt)
	}
	return c.state
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("state change", "from", from, "to", to, "size", c.size, "content", c.selected)
	if c.opts.OnTransition != nil {
		c.opts.OnTransition(from, to)
	}
}

func (c *Controller) stepLoadingStatic() {
	if allLoaded(c.res.Static) {
		c.transition(StateSelectContent)
	}
}

func (c *Controller) stepSelectContent() {
	if c.contentCount() > 0 {
		c.res.Content.Request(c.selected)
	}
	c.transition(StateWaitContent)
}

func (c *Controller) stepWaitContent() {
	if !allLoaded(c.res.Grid) {
		return
	}
	if c.contentCount() > 0 && !c.res.Content.Loaded(c.selected) {
		return
	}
	if err := c.buildGrid(); err != nil {
		// Sizes are clamped, so this only fires on a broken SizeRange
		c.logger.Error("cannot build grid", "size", c.size, "error", err)
		return
	}
	c.transition(StateEnterAnimating)
}

func (c *Controller) stepEnterAnimating(dt time.Duration) {
	if c.anim.Advance(dt) {
		c.anim = nil
		c.transition(StatePlaying)
	}
}

func (c *Controller) stepPlaying(dt time.Duration) {
	c.round.PlayTime += dt
	if !c.grid.Solved() {
		return
	}

	c.grid.RevealBlank()
	c.round.Solved = true
	c.logger.Info("puzzle solved", "round", c.round.ID, "size", c.round.Size,
		"moves", c.round.Moves, "time", c.round.PlayTime.Round(time.Millisecond))
	if c.opts.OnSolved != nil {
		c.opts.OnSolved(c.round)
	}
	c.transition(StateSolved)
}

func (c *Controller) stepExitAnimating(dt time.Duration) {
	if !c.anim.Advance(dt) {
		return
	}
	c.anim = nil
	c.grid = nil
	if n := c.contentCount(); n > 0 {
		c.selected = (c.selected + 1) % n
	}
	c.transition(StateSelectContent)
}

// buildGrid creates and shuffles a fresh grid and starts the add sweep.
func (c *Controller) buildGrid() error {
	g, err := puzzle.NewShuffled(c.size, c.opts.ShuffleIterations, c.rng)
	if err != nil {
		return err
	}
	c.grid = g
	c.anim = g.StartAnimation(puzzle.AnimationAdd, c.opts.AnimationDuration, c.animation)
	c.round = Round{
		ID:      c.newID(),
		Size:    c.size,
		Content: c.selected,
	}
	c.logger.Debug("grid built", "round", c.round.ID, "size", c.size,
		"shuffle", c.opts.ShuffleIterations, "animation", c.animation)
	return nil
}

func (c *Controller) contentCount() int {
	if c.res.Content == nil {
		return 0
	}
	return c.res.Content.Len()
}
