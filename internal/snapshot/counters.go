package snapshot

// Counters are the monotone, never-reused id allocators shared across
// both snapshots (spec §2): ride id, section id, and event-on-route id.
type Counters struct {
	NextRideID         int
	NextSectionID      int
	NextEventOnRouteID int
}

// NewCounters starts every counter at 1.
func NewCounters() *Counters {
	return &Counters{NextRideID: 1, NextSectionID: 1, NextEventOnRouteID: 1}
}
