package tilemap

// Tilemap is one location's 2-D tile grid plus the map events anchored to
// its cells. Tiles are indexed [y][x]; dimensions are fixed for the grid's
// lifetime.
type Tilemap struct {
	Width  int
	Height int
	Tiles  [][]*Tile
	Events []*MapEvent
}

// New creates a tilemap from a non-empty [y][x] tile grid.
func New(tiles [][]*Tile) *Tilemap {
	return &Tilemap{
		Width:  len(tiles[0]),
		Height: len(tiles),
		Tiles:  tiles,
	}
}

// HasTile returns true if (x, y) lies within the grid bounds.
func (m *Tilemap) HasTile(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at (x, y), or the empty tile if out of range.
func (m *Tilemap) GetTile(x, y int) *Tile {
	if !m.HasTile(x, y) {
		return EmptyTile
	}
	return m.Tiles[y][x]
}

// AddEvent anchors a map event to the grid.
func (m *Tilemap) AddEvent(e *MapEvent) {
	m.Events = append(m.Events, e)
}

// GetMapEvent returns the first map event at (x, y), or nil if none.
func (m *Tilemap) GetMapEvent(x, y int) *MapEvent {
	for _, e := range m.Events {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// IsBlocked reports whether (x, y) cannot be stepped onto: out of range,
// a non-walkable base tile, or a non-walkable map event occupying the cell.
func (m *Tilemap) IsBlocked(x, y int) bool {
	if !m.HasTile(x, y) {
		return true
	}
	if !m.GetTile(x, y).Walkable {
		return true
	}
	if e := m.GetMapEvent(x, y); e != nil && !e.IsWalkable() {
		return true
	}
	return false
}
