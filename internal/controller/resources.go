package controller

// Readiness reports whether an externally loaded resource is available.
// Loaded must be cheap and free of side effects; it is polled every tick.
type Readiness interface {
	Loaded() bool
}

// ReadyFunc adapts a plain function to Readiness.
type ReadyFunc func() bool

// Loaded implements Readiness.
func (f ReadyFunc) Loaded() bool {
	return f()
}

// ContentSource is the catalog of back-side pictures the controller cycles
// through, one per round.
type ContentSource interface {
	// Len returns the number of content entries. Zero means rounds are
	// played without a picture.
	Len() int
	// Request starts loading the entry at index. Repeated calls for an entry
	// that is loading or loaded must be harmless.
	Request(index int)
	// Loaded reports whether the entry at index is ready.
	Loaded(index int) bool
}

// Resources groups the readiness predicates the controller polls.
type Resources struct {
	Static  []Readiness   // Needed once, before the first round
	Grid    []Readiness   // Needed before every grid is built
	Content ContentSource // May be nil
}

func allLoaded(rs []Readiness) bool {
	for _, r := range rs {
		if r != nil && !r.Loaded() {
			return false
		}
	}
	return true
}
