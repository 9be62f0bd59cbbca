// Package session orchestrates hero movement, event triggering, NPC ticking
// and cross-location transitions. It is the only component that mutates
// hero or world state in response to commands.
package session

import (
	"github.com/samdwyer/wander/internal/entity"
	"github.com/samdwyer/wander/internal/world"
)

// View is the rendering surface the session notifies after committed state
// changes. Implementations redraw synchronously; the session does not batch
// or coalesce calls.
type View interface {
	// Render redraws the full scene.
	Render(loc *world.Location, hero *entity.Hero)
	// UpdateHeroStats refreshes the stats panel only.
	UpdateHeroStats(hero *entity.Hero)
	// UpdateDiary refreshes the diary panel only.
	UpdateDiary(hero *entity.Hero)
	// UpdateInventory refreshes the inventory panel only.
	UpdateInventory(hero *entity.Hero)
}
