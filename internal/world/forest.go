package world

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wander/internal/gamedata"
	"github.com/samdwyer/wander/internal/telemetry"
	"github.com/samdwyer/wander/internal/tilemap"
)

const (
	// Forest grid dimensions.
	forestSize = 10

	// Probability that a forest cell grows a tree.
	treeChance = 0.3

	// maxPlacementTries bounds the random search for a free cell.
	maxPlacementTries = 100
)

// ForestFactory builds forest grids: a seeded tree scatter with optional
// chest, sign and key placements.
type ForestFactory struct {
	Tileset *tilemap.Tileset
	Items   *gamedata.ItemRegistry
	Rng     *rand.Rand

	PlaceChest bool
	PlaceSign  bool
	PlaceKey   bool
}

// Create generates a forest grid. The same rng seed reproduces the same
// layout.
func (f *ForestFactory) Create(ctx context.Context) *tilemap.Tilemap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "forest.create")
	defer span.End()

	empty := f.Tileset.Get(tilemap.TileEmpty)
	trees := 0

	tiles := make([][]*tilemap.Tile, forestSize)
	for y := range tiles {
		tiles[y] = make([]*tilemap.Tile, forestSize)
		for x := range tiles[y] {
			tiles[y][x] = empty
			if f.Rng.Float64() < treeChance {
				tiles[y][x] = f.Tileset.Get(tilemap.Trees[f.Rng.Intn(len(tilemap.Trees))])
				trees++
			}
		}
	}
	m := tilemap.New(tiles)

	if f.PlaceChest {
		f.placeChest(m)
	}
	if f.PlaceSign {
		f.placeSign(m)
	}
	if f.PlaceKey {
		f.placeKey(m)
	}

	span.SetAttributes(
		attribute.Int("forest.size", forestSize),
		attribute.Int("forest.tree_count", trees),
		attribute.Int("forest.event_count", len(m.Events)),
	)
	return m
}

// freeCell returns a random unblocked, event-free cell, or false if none
// was found within maxPlacementTries attempts.
func (f *ForestFactory) freeCell(m *tilemap.Tilemap) (int, int, bool) {
	for i := 0; i < maxPlacementTries; i++ {
		x := f.Rng.Intn(m.Width)
		y := f.Rng.Intn(m.Height)
		if !m.IsBlocked(x, y) && m.GetMapEvent(x, y) == nil {
			return x, y, true
		}
	}
	return 0, 0, false
}

func (f *ForestFactory) placeChest(m *tilemap.Tilemap) {
	x, y, ok := f.freeCell(m)
	if !ok {
		return
	}
	chest := tilemap.NewMapEvent(x, y, f.Tileset.Get(tilemap.TileChestClosed))
	chest.RunOnce = true
	chest.SetEvent(tilemap.Composite{Children: []tilemap.Event{
		tilemap.ShowMessage{Text: "You open the chest and find 10 gold."},
		tilemap.GiveGold{Amount: 10},
	}})
	m.AddEvent(chest)
}

func (f *ForestFactory) placeSign(m *tilemap.Tilemap) {
	x, y, ok := f.freeCell(m)
	if !ok {
		return
	}
	sign := tilemap.NewMapEvent(x, y, f.Tileset.Get(tilemap.TileSign))
	sign.SetEvent(tilemap.ShowMessage{Text: "Beware of the deep forest."})
	m.AddEvent(sign)
}

func (f *ForestFactory) placeKey(m *tilemap.Tilemap) {
	x, y, ok := f.freeCell(m)
	if !ok {
		return
	}
	key := tilemap.NewMapEvent(x, y, f.Tileset.Get(tilemap.TileKey))
	key.RunOnce = true
	key.SetEvent(tilemap.Composite{Children: []tilemap.Event{
		tilemap.ShowMessage{Text: "You picked up a key."},
		tilemap.AddItem{Item: f.Items.GetByID("key")},
		tilemap.ChangeTile{NewTile: nil}, // the key disappears from the map
	}})
	m.AddEvent(key)
}
