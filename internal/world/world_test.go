package world

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/wander/internal/tilemap"
)

func flatGrid() *tilemap.Tilemap {
	floor := &tilemap.Tile{ID: tilemap.TileEmpty, Walkable: true}
	tiles := make([][]*tilemap.Tile, 3)
	for y := range tiles {
		tiles[y] = []*tilemap.Tile{floor, floor, floor}
	}
	return tilemap.New(tiles)
}

func TestWorldLookup(t *testing.T) {
	w := New()
	town := NewLocation("Town", 0, 0, flatGrid())
	if err := w.AddLocation(town); err != nil {
		t.Fatalf("AddLocation failed: %v", err)
	}

	got, ok := w.Location(0, 0)
	if !ok || got != town {
		t.Error("lookup should return the unique location at (0, 0)")
	}

	if _, ok := w.Location(5, 5); ok {
		t.Error("lookup at empty coordinates should report not found")
	}
	if w.HasLocation(5, 5) {
		t.Error("HasLocation at empty coordinates should be false")
	}
}

func TestWorldRejectsDuplicateCoordinates(t *testing.T) {
	w := New()
	if err := w.AddLocation(NewLocation("Town", 1, 2, flatGrid())); err != nil {
		t.Fatalf("first AddLocation failed: %v", err)
	}
	if err := w.AddLocation(NewLocation("Imposter", 1, 2, flatGrid())); err == nil {
		t.Error("duplicate coordinates should fail construction")
	}
}

func TestDefaultWorld(t *testing.T) {
	ts, items := testDeps()
	f := &Factory{Tileset: ts, Items: items, Rng: rand.New(rand.NewSource(1))}

	w, err := f.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, want := range []struct {
		name string
		x, y int
	}{
		{"Forest", 0, -1},
		{"Town", 0, 0},
		{"Farm", 1, 0},
	} {
		loc, ok := w.Location(want.x, want.y)
		if !ok {
			t.Errorf("missing location at (%d, %d)", want.x, want.y)
			continue
		}
		if loc.Name != want.name {
			t.Errorf("location at (%d, %d) = %q, want %q", want.x, want.y, loc.Name, want.name)
		}
	}
}

func TestDefaultWorldFarmFromMapFile(t *testing.T) {
	ts, items := testDeps()

	path := filepath.Join(t.TempDir(), "farm.csv")
	if err := os.WriteFile(path, []byte("-1,84\n-1,-1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := &Factory{Tileset: ts, Items: items, Rng: rand.New(rand.NewSource(1)), FarmMapFile: path}
	w, err := f.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	farm, _ := w.Location(1, 0)
	if farm.Tilemap.Width != 2 || farm.Tilemap.Height != 2 {
		t.Errorf("farm is %dx%d, want the loaded 2x2 map", farm.Tilemap.Width, farm.Tilemap.Height)
	}
}
