package tilemap

import "testing"

var (
	testFloor = &Tile{ID: TileEmpty, Walkable: true}
	testTree  = &Tile{ID: TileTree1, Walkable: false}
	testChest = &Tile{ID: TileChestClosed, Walkable: false}
	testKey   = &Tile{ID: TileKey, Walkable: true}
)

// testGrid builds a width x height grid of walkable floor.
func testGrid(width, height int) *Tilemap {
	tiles := make([][]*Tile, height)
	for y := range tiles {
		tiles[y] = make([]*Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = testFloor
		}
	}
	return New(tiles)
}

func TestBlockedOutOfRange(t *testing.T) {
	m := testGrid(10, 8)

	outside := [][2]int{
		{-1, 0}, {0, -1}, {10, 0}, {0, 8}, {-5, -5}, {100, 100},
	}
	for _, pos := range outside {
		if !m.IsBlocked(pos[0], pos[1]) {
			t.Errorf("IsBlocked(%d, %d) = false, want true for out-of-range cell", pos[0], pos[1])
		}
		if m.HasTile(pos[0], pos[1]) {
			t.Errorf("HasTile(%d, %d) = true, want false", pos[0], pos[1])
		}
	}
}

func TestGetTileOutOfRangeFallsBackToEmpty(t *testing.T) {
	m := testGrid(4, 4)

	tile := m.GetTile(-1, 99)
	if tile.ID != TileEmpty || !tile.Walkable {
		t.Errorf("out-of-range GetTile = %+v, want empty walkable tile", tile)
	}
}

func TestBlockedByBaseTile(t *testing.T) {
	m := testGrid(5, 5)
	m.Tiles[2][3] = testTree

	if !m.IsBlocked(3, 2) {
		t.Error("tree cell should be blocked")
	}
	if m.IsBlocked(2, 2) {
		t.Error("floor cell should not be blocked")
	}
}

func TestBlockedByMapEventOverlay(t *testing.T) {
	m := testGrid(5, 5)

	m.AddEvent(NewMapEvent(1, 1, testChest))
	m.AddEvent(NewMapEvent(2, 2, testKey))
	m.AddEvent(NewMapEvent(3, 3, nil))

	if !m.IsBlocked(1, 1) {
		t.Error("chest overlay is non-walkable, cell should be blocked")
	}
	if m.IsBlocked(2, 2) {
		t.Error("key overlay is walkable, cell should not be blocked")
	}
	if m.IsBlocked(3, 3) {
		t.Error("event without overlay should not block")
	}
}

func TestGetMapEventFirstMatch(t *testing.T) {
	m := testGrid(5, 5)

	first := NewMapEvent(2, 2, nil)
	second := NewMapEvent(2, 2, testChest)
	m.AddEvent(first)
	m.AddEvent(second)

	if got := m.GetMapEvent(2, 2); got != first {
		t.Error("GetMapEvent should return the first event at the cell")
	}
	if got := m.GetMapEvent(4, 4); got != nil {
		t.Errorf("GetMapEvent on an empty cell = %v, want nil", got)
	}
}

func TestDimensionsFromTiles(t *testing.T) {
	m := testGrid(7, 3)
	if m.Width != 7 || m.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 7x3", m.Width, m.Height)
	}
}
