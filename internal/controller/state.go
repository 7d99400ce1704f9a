// Package controller sequences a sliding-puzzle session: it waits for
// externally loaded resources, builds and shuffles grids, runs the tile
// sweep animations and forwards player moves to the grid while a round is
// in play.
//
// The controller is frame-driven. An external loop calls Update once per
// tick; input handlers call the action methods between ticks. Nothing here
// blocks or spawns goroutines.
package controller

// State is the controller's position in the round cycle.
type State int

const (
	// StateLoadingStatic waits for the static resources (frame, theme, sounds).
	StateLoadingStatic State = iota
	// StateSelectContent requests the picture for the selected content index.
	StateSelectContent
	// StateWaitContent waits for grid and content resources, then builds the grid.
	StateWaitContent
	// StateEnterAnimating runs the tile add sweep.
	StateEnterAnimating
	// StatePlaying accepts moves until the grid is solved.
	StatePlaying
	// StateSolved shows the completed picture and waits for a shuffle.
	StateSolved
	// StateExitAnimating runs the tile remove sweep before the next round.
	StateExitAnimating
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoadingStatic:
		return "loading"
	case StateSelectContent:
		return "select-content"
	case StateWaitContent:
		return "wait-content"
	case StateEnterAnimating:
		return "entering"
	case StatePlaying:
		return "playing"
	case StateSolved:
		return "solved"
	case StateExitAnimating:
		return "exiting"
	default:
		return "unknown"
	}
}

// Side is the face of the tiles turned towards the player.
type Side int

const (
	SideFront Side = iota // Numbers
	SideBack              // Picture
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}
