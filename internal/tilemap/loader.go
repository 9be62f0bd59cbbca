package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Loader reads the plain map file format: one row per line, comma-separated
// tile ids. Ids are resolved through the injected tileset.
type Loader struct {
	tileset *Tileset
}

// NewLoader creates a loader resolving tile ids against the given tileset.
func NewLoader(tileset *Tileset) *Loader {
	return &Loader{tileset: tileset}
}

// LoadFile reads a map file from disk.
func (l *Loader) LoadFile(filename string) (*Tilemap, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", filename, err)
	}
	defer f.Close()

	m, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load map file %s: %w", filename, err)
	}
	return m, nil
}

// Load parses a map from the reader.
func (l *Loader) Load(r io.Reader) (*Tilemap, error) {
	var tiles [][]*Tile

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var row []*Tile
		for _, field := range strings.Split(line, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid tile id %q on row %d: %w", field, len(tiles), err)
			}
			row = append(row, l.tileset.Get(TileID(id)))
		}
		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return nil, fmt.Errorf("row %d has %d tiles, expected %d", len(tiles), len(row), len(tiles[0]))
		}
		tiles = append(tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("map is empty")
	}

	return New(tiles), nil
}
