package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/wander/internal/gamedata"
)

// Item is one occurrence of an item definition in a hero's inventory.
type Item struct {
	ID  uuid.UUID
	Def *gamedata.ItemDef
}

// NewItem creates an instance of the given definition.
func NewItem(def *gamedata.ItemDef) *Item {
	return &Item{
		ID:  uuid.New(),
		Def: def,
	}
}

// String returns the item's display name.
func (i *Item) String() string {
	return i.Def.Name
}
