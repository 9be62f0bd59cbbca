package session

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wander/internal/entity"
	"github.com/samdwyer/wander/internal/gamedata"
	"github.com/samdwyer/wander/internal/telemetry"
	"github.com/samdwyer/wander/internal/world"
)

// Session drives one hero through the world. All commands resolve fully
// before the next is accepted; there is no concurrent mutation.
type Session struct {
	Hero    *entity.Hero
	World   *world.World
	Current *world.Location

	view View
	log  *logrus.Logger
}

// New creates a session starting at the location at world origin (0, 0).
func New(w *world.World, hero *entity.Hero, view View, log *logrus.Logger) (*Session, error) {
	start, ok := w.Location(0, 0)
	if !ok {
		return nil, fmt.Errorf("world has no starting location at (0, 0)")
	}
	return &Session{
		Hero:    hero,
		World:   w,
		Current: start,
		view:    view,
		log:     log,
	}, nil
}

// Start pushes the initial state to the view.
func (s *Session) Start() {
	s.view.UpdateHeroStats(s.Hero)
	s.view.UpdateDiary(s.Hero)
	s.view.UpdateInventory(s.Hero)
	s.view.Render(s.Current, s.Hero)
}

// MoveHero handles a movement intent. Only single-axis unit steps are
// valid; anything else is silently ignored. The candidate cell's event
// triggers on approach, before the move is validated against blocking, so
// a locked door still messages even though the bump is rejected.
func (s *Session) MoveHero(ctx context.Context, dx, dy int) {
	if abs(dx) > 1 || abs(dy) > 1 {
		return
	}
	if abs(dx)+abs(dy) != 1 {
		return
	}

	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "session.move_hero")
	defer span.End()
	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.String("move.location", s.Current.Name),
	)

	newX := s.Hero.X + dx
	newY := s.Hero.Y + dy

	s.tryTriggerEvent(newX, newY)

	tm := s.Current.Tilemap
	if newX < 0 || newX >= tm.Width || newY < 0 || newY >= tm.Height {
		span.SetAttributes(attribute.String("move.outcome", "edge"))
		s.tryChangeLocation(dx, dy)
		return
	}

	if tm.IsBlocked(newX, newY) {
		span.SetAttributes(attribute.String("move.outcome", "blocked"))
		return
	}

	s.Hero.X = newX
	s.Hero.Y = newY
	span.SetAttributes(attribute.String("move.outcome", "moved"))
	s.view.Render(s.Current, s.Hero)
}

// Update advances every wandering map event by delta. A step is dropped
// when it would leave the grid, land on a blocked cell, or bring the NPC
// into (or keep it shoving through) the hero's immediate neighborhood.
func (s *Session) Update(delta time.Duration) {
	tm := s.Current.Tilemap
	moved := false

	for _, e := range tm.Events {
		dx, dy := e.Update(delta)
		if dx == 0 && dy == 0 {
			continue
		}

		// Clamp the axis that would exit the grid.
		if nx := e.X + dx; nx < 0 || nx >= tm.Width {
			dx = 0
		}
		if ny := e.Y + dy; ny < 0 || ny >= tm.Height {
			dy = 0
		}

		nx, ny := e.X+dx, e.Y+dy
		if tm.IsBlocked(nx, ny) {
			dx, dy = 0, 0
		}
		// Never step while the hero is adjacent, and never step adjacent
		// onto the hero (Chebyshev distance 1 around both positions).
		if chebyshevAdjacent(s.Hero.X, s.Hero.Y, e.X, e.Y) {
			dx, dy = 0, 0
		}
		if chebyshevAdjacent(s.Hero.X, s.Hero.Y, nx, ny) {
			dx, dy = 0, 0
		}

		if dx != 0 || dy != 0 {
			e.X += dx
			e.Y += dy
			moved = true
		}
	}

	if moved {
		s.view.Render(s.Current, s.Hero)
	}
}

// tryTriggerEvent fires the map event at (x, y), if any.
func (s *Session) tryTriggerEvent(x, y int) {
	e := s.Current.Tilemap.GetMapEvent(x, y)
	if e == nil || !e.HasEvent() {
		return
	}
	e.Trigger(s)
	s.view.Render(s.Current, s.Hero)
}

// tryChangeLocation crosses to the adjacent location in step direction
// (dx, dy). Without a neighbor the edge is a hard wall and the move is
// dropped. On success the hero lands on the far edge of the new grid along
// the axis of entry.
func (s *Session) tryChangeLocation(dx, dy int) {
	newX := s.Current.X + dx
	newY := s.Current.Y + dy

	next, ok := s.World.Location(newX, newY)
	if !ok {
		return
	}

	s.log.WithFields(logrus.Fields{
		"from": s.Current.Name,
		"to":   next.Name,
	}).Info("location change")

	s.Current = next
	tm := next.Tilemap

	if dx != 0 {
		if dx > 0 {
			s.Hero.X = 0
		} else {
			s.Hero.X = tm.Width - 1
		}
	}
	if dy != 0 {
		if dy > 0 {
			s.Hero.Y = 0
		} else {
			s.Hero.Y = tm.Height - 1
		}
	}

	s.view.Render(next, s.Hero)
}

// AddMessage appends to the hero's diary. Part of the tilemap.Host surface.
func (s *Session) AddMessage(msg string) {
	s.Hero.AddDiaryEntry(msg)
	s.log.WithField("message", msg).Debug("diary entry")
	s.view.UpdateDiary(s.Hero)
}

// AddGold credits the hero's gold.
func (s *Session) AddGold(amount int) {
	s.Hero.AddGold(amount)
	s.view.UpdateHeroStats(s.Hero)
}

// AddItem puts a new instance of the definition into the inventory.
func (s *Session) AddItem(def *gamedata.ItemDef) {
	if def == nil {
		s.log.Warn("add item with unknown definition ignored")
		return
	}
	s.Hero.AddItem(entity.NewItem(def))
	s.view.UpdateInventory(s.Hero)
}

// RemoveItem drops one inventory instance matching the definition id.
func (s *Session) RemoveItem(itemID string) {
	if s.Hero.RemoveItem(itemID) {
		s.view.UpdateInventory(s.Hero)
	}
}

// HasItem reports whether the hero carries an instance of the definition.
func (s *Session) HasItem(itemID string) bool {
	return s.Hero.HasItem(itemID)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func chebyshevAdjacent(x1, y1, x2, y2 int) bool {
	return abs(x1-x2) <= 1 && abs(y1-y2) <= 1
}
