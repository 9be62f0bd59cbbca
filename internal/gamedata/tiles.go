package gamedata

import "github.com/gdamore/tcell/v2"

// TileDef defines a tile type loaded from JSON.
type TileDef struct {
	ID       int    `json:"id"`       // Numeric tile identifier matching map files (e.g., 84)
	Name     string `json:"name"`     // Internal name (e.g., "tree_1")
	Glyph    string `json:"glyph"`    // Single character for rendering (e.g., "T")
	Color    string `json:"color"`    // Hex color code (e.g., "#00AA00")
	Walkable bool   `json:"walkable"` // Whether the hero can stand on this tile
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return []rune(t.Glyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

// MustLoadTiles loads tile definitions, panicking on error.
func MustLoadTiles() []TileDef {
	tiles, err := LoadTiles()
	if err != nil {
		panic(err)
	}
	return tiles
}
