package world

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wander/internal/gamedata"
	"github.com/samdwyer/wander/internal/telemetry"
	"github.com/samdwyer/wander/internal/tilemap"
)

// Factory builds the default world: a forest, the town, and a farm.
type Factory struct {
	Tileset *tilemap.Tileset
	Items   *gamedata.ItemRegistry
	Rng     *rand.Rand

	// FarmMapFile optionally loads the farm grid from a CSV map file
	// instead of generating it.
	FarmMapFile string
}

// Create builds the world graph. Location coordinates are fixed content;
// a duplicate is a bug and fails construction.
func (f *Factory) Create(ctx context.Context) (*World, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.create")
	defer span.End()

	forestFactory := &ForestFactory{
		Tileset:    f.Tileset,
		Items:      f.Items,
		Rng:        f.Rng,
		PlaceChest: true,
		PlaceSign:  true,
		PlaceKey:   true,
	}
	townFactory := &TownFactory{Tileset: f.Tileset, Items: f.Items, Rng: f.Rng}

	farm, err := f.createFarm(ctx)
	if err != nil {
		return nil, err
	}

	w := New()
	locations := []*Location{
		NewLocation("Forest", 0, -1, forestFactory.Create(ctx)),
		NewLocation("Town", 0, 0, townFactory.Create(ctx)),
		NewLocation("Farm", 1, 0, farm),
	}
	for _, loc := range locations {
		if err := w.AddLocation(loc); err != nil {
			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("world.location_count", len(locations)))
	return w, nil
}

// createFarm generates the farm grid, or loads it from FarmMapFile when set.
func (f *Factory) createFarm(ctx context.Context) (*tilemap.Tilemap, error) {
	if f.FarmMapFile == "" {
		farmFactory := &ForestFactory{Tileset: f.Tileset, Items: f.Items, Rng: f.Rng}
		return farmFactory.Create(ctx), nil
	}
	return tilemap.NewLoader(f.Tileset).LoadFile(f.FarmMapFile)
}
