package controller

import "time"

// Round holds the statistics of one grid, from build to the next shuffle.
type Round struct {
	ID       string        // Unique round identifier
	Size     int           // Grid dimension
	Content  int           // Content index shown on the back side
	Moves    int           // Player slides that changed the grid
	PlayTime time.Duration // Time spent in the playing state
	Solved   bool
}
