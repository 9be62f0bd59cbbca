package tilemap

import (
	"testing"

	"github.com/samdwyer/wander/internal/gamedata"
)

func TestTilesetLookup(t *testing.T) {
	ts := NewTileset([]gamedata.TileDef{
		{ID: -1, Name: "empty", Walkable: true},
		{ID: 84, Name: "tree_1", Walkable: false},
	})

	tree := ts.Get(TileTree1)
	if tree.ID != TileTree1 || tree.Walkable {
		t.Errorf("tree tile = %+v, want non-walkable id 84", tree)
	}

	// Tiles are shared, not copied.
	if ts.Get(TileTree1) != tree {
		t.Error("repeated lookups should return the same tile instance")
	}
}

func TestTilesetUnknownIDFallsBackToEmpty(t *testing.T) {
	ts := NewTileset([]gamedata.TileDef{
		{ID: -1, Name: "empty", Walkable: true},
	})

	tile := ts.Get(TileID(9999))
	if tile.ID != TileEmpty || !tile.Walkable {
		t.Errorf("unknown id resolved to %+v, want the empty walkable tile", tile)
	}
}

func TestTilesetFromEmbeddedCatalog(t *testing.T) {
	ts := MustLoadTileset()

	if ts.Get(TileTree1).Walkable {
		t.Error("trees should be non-walkable")
	}
	if !ts.Get(TileBuildingDoorOpen).Walkable {
		t.Error("open door should be walkable")
	}
	if ts.Get(TileBuildingDoorClosed).Walkable {
		t.Error("closed door should be non-walkable")
	}
	if !ts.Get(TileEmpty).Walkable {
		t.Error("empty tile should be walkable")
	}
}
