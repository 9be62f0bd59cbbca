// Package tilemap provides the tile grid, map events and the event trees
// that run when the hero bumps into them.
package tilemap

// TileID identifies a tile type in map files and the tile catalog.
type TileID int

// TileEmpty is the sentinel id for an empty, walkable cell.
const TileEmpty TileID = -1

// Tile ids match the numeric values used in map files and tiles.json.
const (
	TileTree1       TileID = 84
	TileTree2       TileID = 85
	TileTree3       TileID = 86
	TileCoconutTree TileID = 87

	TileFolk1 TileID = 4
	TileFolk2 TileID = 5
	TileFolk3 TileID = 6
	TileFolk4 TileID = 7
	TileFolk5 TileID = 8
	TileFolk6 TileID = 14
	TileFolk7 TileID = 15

	TileBuildingCornerTL       TileID = 0
	TileBuildingCornerTR       TileID = 3
	TileBuildingCornerBL       TileID = 32
	TileBuildingCornerBR       TileID = 35
	TileBuildingWallLeft       TileID = 16
	TileBuildingWallRight      TileID = 19
	TileBuildingWallHorizontal TileID = 1
	TileBuildingDoorClosed     TileID = 36
	TileBuildingDoorOpen       TileID = 37
	TileBuildingWindow         TileID = 33

	TileFurnitureTableRound  TileID = 54
	TileFurnitureTableSquare TileID = 55
	TileFurnitureBench       TileID = 56
	TileFurnitureBed         TileID = 62

	TileChestClosed TileID = 57
	TileSign        TileID = 31
	TileKey         TileID = 90
	TileRing        TileID = 89
)

// Trees holds the tile ids a forest scatter draws from.
var Trees = []TileID{TileTree1, TileTree2, TileTree3}

// Folks holds the tile ids used for wandering townsfolk.
var Folks = []TileID{TileFolk1, TileFolk2, TileFolk3, TileFolk4, TileFolk5, TileFolk6, TileFolk7}

// Tile is an immutable tile value. Grid cells share tiles by pointer; a tile
// is never copied or mutated after the tileset creates it.
type Tile struct {
	ID       TileID
	Walkable bool
}

// EmptyTile is the shared fallback tile returned for unknown ids and
// out-of-range grid lookups.
var EmptyTile = &Tile{ID: TileEmpty, Walkable: true}
