package world

import "fmt"

// World is the set of locations keyed by their (x, y) offset coordinates.
type World struct {
	locations []*Location
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// AddLocation adds a location. Duplicate coordinates are a content bug and
// fail construction.
func (w *World) AddLocation(loc *Location) error {
	for _, existing := range w.locations {
		if existing.X == loc.X && existing.Y == loc.Y {
			return fmt.Errorf("location (%d, %d) already exists in the world", loc.X, loc.Y)
		}
	}
	w.locations = append(w.locations, loc)
	return nil
}

// HasLocation reports whether a location exists at (x, y).
func (w *World) HasLocation(x, y int) bool {
	_, ok := w.Location(x, y)
	return ok
}

// Location returns the location at (x, y), or false if none exists there.
func (w *World) Location(x, y int) (*Location, bool) {
	for _, loc := range w.locations {
		if loc.X == x && loc.Y == y {
			return loc, true
		}
	}
	return nil, false
}

// Locations returns all locations.
func (w *World) Locations() []*Location {
	return w.locations
}
