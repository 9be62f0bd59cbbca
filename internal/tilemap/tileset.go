package tilemap

import "github.com/samdwyer/wander/internal/gamedata"

// Tileset maps tile ids to shared Tile values. It is constructed once from
// the embedded tile catalog and passed to whatever builds or loads grids;
// there is no global instance.
type Tileset struct {
	tiles map[TileID]*Tile
}

// NewTileset builds a tileset from loaded tile definitions.
func NewTileset(defs []gamedata.TileDef) *Tileset {
	tiles := make(map[TileID]*Tile, len(defs))
	for _, def := range defs {
		id := TileID(def.ID)
		tiles[id] = &Tile{ID: id, Walkable: def.Walkable}
	}
	return &Tileset{tiles: tiles}
}

// MustLoadTileset builds a tileset from the embedded tiles.json, panicking on error.
func MustLoadTileset() *Tileset {
	return NewTileset(gamedata.MustLoadTiles())
}

// Get returns the tile for the given id. Unknown ids resolve to the empty,
// walkable tile so lookup paths stay total.
func (ts *Tileset) Get(id TileID) *Tile {
	if tile, ok := ts.tiles[id]; ok {
		return tile
	}
	if tile, ok := ts.tiles[TileEmpty]; ok {
		return tile
	}
	return EmptyTile
}

// Count returns the number of registered tile types.
func (ts *Tileset) Count() int {
	return len(ts.tiles)
}
