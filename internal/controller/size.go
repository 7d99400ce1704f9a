package controller

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// SizeRange bounds the grid sizes a player may request.
type SizeRange struct {
	Min  int
	Max  int
	Step int
}

// DefaultSizeRange matches the 2..10 range of the classic puzzle.
func DefaultSizeRange() SizeRange {
	return SizeRange{Min: 2, Max: 10, Step: 1}
}

// normalized returns a usable range: Min is at least puzzle.MinSize,
// Max is at least Min, Step is at least 1.
func (r SizeRange) normalized() SizeRange {
	r.Min = core.Max(r.Min, puzzle.MinSize)
	r.Max = core.Max(r.Max, r.Min)
	r.Step = core.Max(r.Step, 1)
	return r
}

// Clamp restricts n to [Min, Max].
func (r SizeRange) Clamp(n int) int {
	r = r.normalized()
	return core.Clamp(n, r.Min, r.Max)
}

// Valid reports whether n is within range and on the step grid.
func (r SizeRange) Valid(n int) bool {
	r = r.normalized()
	return n >= r.Min && n <= r.Max && (n-r.Min)%r.Step == 0
}

// Resolve turns a requested size into the size to use. Out-of-range values
// are clamped; values off the step grid fall back to last.
func (r SizeRange) Resolve(n, last int) int {
	n = r.Clamp(n)
	if !r.Valid(n) {
		return last
	}
	return n
}

// ParseSize resolves free-form size input from a player-facing control.
// Text that is not an integer falls back to last.
func (r SizeRange) ParseSize(text string, last int) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return last
	}
	return r.Resolve(n, last)
}
