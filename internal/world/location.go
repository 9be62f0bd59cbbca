// Package world provides the location graph and the factories that build
// each location's tile grid.
package world

import "github.com/samdwyer/wander/internal/tilemap"

// Location is a named tile grid at a world-offset coordinate. Its identity
// (name and coordinates) never changes; the grid's contents mutate through
// events.
type Location struct {
	Name    string
	X, Y    int // world-offset grid coordinates, not pixels
	Tilemap *tilemap.Tilemap
}

// NewLocation creates a location owning the given tile grid.
func NewLocation(name string, x, y int, tm *tilemap.Tilemap) *Location {
	return &Location{Name: name, X: x, Y: y, Tilemap: tm}
}
