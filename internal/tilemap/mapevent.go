package tilemap

import (
	"math/rand"
	"time"
)

// Movement decides a map event's next step once its move timer fires.
type Movement interface {
	Step(rng *rand.Rand) (dx, dy int)
}

// RandomWalk wanders one axis-aligned step at a time. Both axes are drawn
// from {-1, 0, 1} on every step so the consumed random stream does not
// depend on the outcome; a non-zero x draw wins and the y draw is dropped.
type RandomWalk struct{}

// Step returns a single-axis unit step, or (0, 0) to stay put.
func (RandomWalk) Step(rng *rand.Rand) (int, int) {
	dx := rng.Intn(3) - 1
	dy := rng.Intn(3) - 1
	if dx != 0 {
		return dx, 0
	}
	return 0, dy
}

// MapEvent is a grid-anchored entity: a chest, sign, door or wandering
// folk. It optionally overlays a tile on its cell, optionally carries a
// triggerable event tree, and optionally moves on its own.
type MapEvent struct {
	X, Y int

	// Tile is drawn in place of the grid tile while the event is present.
	// A nil overlay leaves the cell walkable.
	Tile *Tile

	// RunOnce clears the installed event after its first trigger.
	RunOnce bool

	// Active gates triggering; Deactivate flips it off permanently
	// ("door now unlocked, stop asking").
	Active bool

	// MoveSpeed is the delay between wander steps.
	MoveSpeed time.Duration

	event     Event
	movement  Movement
	moveTimer time.Duration
	rng       *rand.Rand
}

// NewMapEvent creates an active map event at (x, y) with an optional
// overlay tile.
func NewMapEvent(x, y int, tile *Tile) *MapEvent {
	return &MapEvent{X: x, Y: y, Tile: tile, Active: true}
}

// IsWalkable reports whether the hero may stand on the event's cell.
// An event without an overlay tile is walkable; one with an overlay
// inherits that tile's walkability.
func (m *MapEvent) IsWalkable() bool {
	if m.Tile == nil {
		return true
	}
	return m.Tile.Walkable
}

// HasEvent returns true if an event tree is installed.
func (m *MapEvent) HasEvent() bool {
	return m.event != nil
}

// SetEvent installs an event tree, replacing any previous one. The map
// event owns the tree exclusively; the tree reaches back to its owner only
// through the trigger dispatch, never through a stored pointer.
func (m *MapEvent) SetEvent(e Event) {
	m.event = e
}

// SetMovement gives the event wandering behavior driven by the given rng.
func (m *MapEvent) SetMovement(movement Movement, speed time.Duration, rng *rand.Rand) {
	m.movement = movement
	m.MoveSpeed = speed
	m.rng = rng
}

// HasMovement returns true if the event moves on its own.
func (m *MapEvent) HasMovement() bool {
	return m.movement != nil
}

// Trigger runs the installed event tree against the host. It is a no-op
// while inactive or with no event installed. A run-once event is consumed:
// the installed tree is cleared after it runs.
func (m *MapEvent) Trigger(h Host) {
	if !m.Active || m.event == nil {
		return
	}
	m.run(m.event, h)
	if m.RunOnce {
		m.event = nil
	}
}

// Update accumulates delta into the move timer and, once MoveSpeed is
// reached, resets it and returns the next wander step. Events without
// movement never step.
func (m *MapEvent) Update(delta time.Duration) (int, int) {
	if m.movement == nil {
		return 0, 0
	}
	m.moveTimer += delta
	if m.moveTimer < m.MoveSpeed {
		return 0, 0
	}
	m.moveTimer = 0
	return m.movement.Step(m.rng)
}
