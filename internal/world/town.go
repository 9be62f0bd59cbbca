package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wander/internal/gamedata"
	"github.com/samdwyer/wander/internal/telemetry"
	"github.com/samdwyer/wander/internal/tilemap"
)

// DoorVariant selects how a building's door behaves.
type DoorVariant int

const (
	// DoorOpen is walkable from the start.
	DoorOpen DoorVariant = iota
	// DoorClosed never opens.
	DoorClosed
	// DoorSimple opens on the first bump.
	DoorSimple
	// DoorLocked opens only when the hero carries a key.
	DoorLocked
)

const (
	townSize = 10

	// folkMoveSpeed is the delay between townsfolk wander steps.
	folkMoveSpeed = 800 * time.Millisecond
)

// TownFactory builds the settlement grid: a fixed building layout with
// door variants and wandering townsfolk.
type TownFactory struct {
	Tileset *tilemap.Tileset
	Items   *gamedata.ItemRegistry
	Rng     *rand.Rand
}

// Create generates the town grid.
func (f *TownFactory) Create(ctx context.Context) *tilemap.Tilemap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "town.create")
	defer span.End()

	empty := f.Tileset.Get(tilemap.TileEmpty)
	tiles := make([][]*tilemap.Tile, townSize)
	for y := range tiles {
		tiles[y] = make([]*tilemap.Tile, townSize)
		for x := range tiles[y] {
			tiles[y][x] = empty
		}
	}
	m := tilemap.New(tiles)

	f.createBuilding(m, 2, 2, 4, 4, DoorOpen)
	f.createBuilding(m, 7, 2, 3, 3, DoorSimple)
	f.createBuilding(m, 2, 7, 3, 3, DoorLocked)
	f.createBuilding(m, 7, 7, 3, 3, DoorClosed)

	// A table in the inn, behind the open door.
	m.Tiles[3][4] = f.Tileset.Get(tilemap.TileFurnitureTableRound)

	f.placeFolk(m, 0, 5, "\"Lovely weather today, isn't it?\"")
	f.placeFolk(m, 6, 0, "\"Lost your key? Check the forest.\"")

	span.SetAttributes(
		attribute.Int("town.size", townSize),
		attribute.Int("town.event_count", len(m.Events)),
	)
	return m
}

// createBuilding carves a rectangular building with (x, y) as its top-left
// corner. The door sits on the bottom wall, with a window beside it when
// the wall has room.
func (f *TownFactory) createBuilding(m *tilemap.Tilemap, x, y, width, height int, door DoorVariant) {
	get := f.Tileset.Get
	bottom := y + height - 1
	right := x + width - 1

	m.Tiles[y][x] = get(tilemap.TileBuildingCornerTL)
	m.Tiles[y][right] = get(tilemap.TileBuildingCornerTR)
	m.Tiles[bottom][x] = get(tilemap.TileBuildingCornerBL)
	m.Tiles[bottom][right] = get(tilemap.TileBuildingCornerBR)

	for i := y + 1; i < bottom; i++ {
		m.Tiles[i][x] = get(tilemap.TileBuildingWallLeft)
		m.Tiles[i][right] = get(tilemap.TileBuildingWallRight)
	}
	for i := x + 1; i < right; i++ {
		m.Tiles[y][i] = get(tilemap.TileBuildingWallHorizontal)
		m.Tiles[bottom][i] = get(tilemap.TileBuildingWallHorizontal)
	}

	f.placeDoor(m, x+1, bottom, door)

	// Window beside the door if the wall has room.
	if x+2 < right {
		m.Tiles[bottom][x+2] = get(tilemap.TileBuildingWindow)
	}
}

// placeDoor installs the door cell. Open and closed doors are plain tiles;
// simple and locked doors are map events whose overlay controls blocking.
func (f *TownFactory) placeDoor(m *tilemap.Tilemap, x, y int, variant DoorVariant) {
	closed := f.Tileset.Get(tilemap.TileBuildingDoorClosed)
	open := f.Tileset.Get(tilemap.TileBuildingDoorOpen)

	switch variant {
	case DoorOpen:
		m.Tiles[y][x] = open
	case DoorClosed:
		m.Tiles[y][x] = closed
	case DoorSimple:
		door := tilemap.NewMapEvent(x, y, closed)
		door.RunOnce = true
		door.SetEvent(tilemap.Composite{Children: []tilemap.Event{
			tilemap.ShowMessage{Text: "The door swings open."},
			tilemap.ChangeTile{NewTile: open},
		}})
		m.AddEvent(door)
	case DoorLocked:
		door := tilemap.NewMapEvent(x, y, closed)
		door.SetEvent(tilemap.Conditional{
			Cond: tilemap.HasItem{ItemID: "key"},
			Then: tilemap.Composite{Children: []tilemap.Event{
				tilemap.ShowMessage{Text: "You unlock the door with the key."},
				tilemap.RemoveItem{ItemID: "key"},
				tilemap.ChangeTile{NewTile: open},
				tilemap.Deactivate{},
			}},
			Else: tilemap.ShowMessage{Text: "The door is locked."},
		})
		m.AddEvent(door)
	}
}

// placeFolk adds a wandering townsperson with a repeatable greeting.
func (f *TownFactory) placeFolk(m *tilemap.Tilemap, x, y int, greeting string) {
	folk := tilemap.NewMapEvent(x, y, f.Tileset.Get(tilemap.Folks[f.Rng.Intn(len(tilemap.Folks))]))
	folk.SetEvent(tilemap.ShowMessage{Text: greeting})
	folk.SetMovement(tilemap.RandomWalk{}, folkMoveSpeed, f.Rng)
	m.AddEvent(folk)
}
