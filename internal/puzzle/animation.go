package puzzle

import "time"

// AnimationKind selects whether an animation reveals or hides the tiles.
type AnimationKind int

const (
	AnimationAdd AnimationKind = iota
	AnimationRemove
)

// String returns a human-readable name for the animation kind.
func (k AnimationKind) String() string {
	if k == AnimationRemove {
		return "remove"
	}
	return "add"
}

// Animation is a staggered reveal or hide sweep over the tiles of a grid.
//
// Tile id i is acted upon once the elapsed time reaches i × (duration / N²),
// so the sweep runs in id order and ends with the blank at the full duration.
type Animation struct {
	grid     *Grid
	kind     AnimationKind
	duration time.Duration
	elapsed  time.Duration
	fired    []bool // indexed by tile id
	done     bool
}

// StartAnimation prepares an add or remove sweep over the grid.
//
// When enabled is false the animation finishes immediately: an add shows
// every tile at once (except the blank while unsolved) and a remove leaves
// the tiles untouched until the grid is discarded.
func (g *Grid) StartAnimation(kind AnimationKind, duration time.Duration, enabled bool) *Animation {
	a := &Animation{
		grid:     g,
		kind:     kind,
		duration: duration,
		fired:    make([]bool, g.size*g.size+1),
	}

	if kind == AnimationAdd {
		for row := range g.size {
			for column := range g.size {
				t := g.cells[row][column]
				t.Visible = !enabled && t.ID != g.Blank()
			}
		}
	}

	switch {
	case !enabled:
		a.done = true
	case duration <= 0:
		a.fireRemaining()
		a.done = true
	}
	return a
}

// Kind returns whether this is an add or remove sweep.
func (a *Animation) Kind() AnimationKind {
	return a.kind
}

// Duration returns the total sweep duration.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Elapsed returns the time accumulated by Advance.
func (a *Animation) Elapsed() time.Duration {
	return a.elapsed
}

// Fraction returns the elapsed portion of the sweep in [0, 1].
func (a *Animation) Fraction() float64 {
	if a.done || a.duration <= 0 {
		return 1.0
	}
	f := a.elapsed.Seconds() / a.duration.Seconds()
	if f > 1.0 {
		return 1.0
	}
	return f
}

// Done reports whether the sweep has finished.
func (a *Animation) Done() bool {
	return a.done
}

// Advance adds dt to the elapsed time and flips every tile whose trigger
// time has been reached. Returns true once the sweep is finished.
func (a *Animation) Advance(dt time.Duration) bool {
	if a.done {
		return true
	}

	a.elapsed += dt
	n := len(a.fired) - 1
	increment := a.duration.Seconds() / float64(n)
	elapsed := a.elapsed.Seconds()

	for id := 1; id <= n; id++ {
		if a.fired[id] {
			continue
		}
		if elapsed < float64(id)*increment {
			// Trigger times increase with id
			break
		}
		a.fire(id)
	}

	if a.elapsed >= a.duration {
		// Rounding can leave the last trigger a hair past the duration
		a.fireRemaining()
		a.done = true
	}
	return a.done
}

// fire applies the sweep to a single tile.
func (a *Animation) fire(id int) {
	a.fired[id] = true
	pos, ok := a.grid.Locate(id)
	if !ok {
		return
	}
	t := a.grid.cells[pos.Row][pos.Column]
	switch a.kind {
	case AnimationAdd:
		// The blank only shows once the puzzle is solved
		if id != a.grid.Blank() {
			t.Visible = true
		}
	case AnimationRemove:
		t.Visible = false
	}
}

func (a *Animation) fireRemaining() {
	for id := 1; id < len(a.fired); id++ {
		if !a.fired[id] {
			a.fire(id)
		}
	}
}
