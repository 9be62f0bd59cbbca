package gamedata

import "testing"

func TestLoadTiles(t *testing.T) {
	tiles, err := LoadTiles()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}
	if len(tiles) == 0 {
		t.Fatal("no tiles loaded")
	}

	byName := make(map[string]TileDef)
	for _, tile := range tiles {
		byName[tile.Name] = tile
	}

	empty, ok := byName["empty"]
	if !ok || empty.ID != -1 || !empty.Walkable {
		t.Errorf("empty tile = %+v, want walkable id -1", empty)
	}
	if tree, ok := byName["tree_1"]; !ok || tree.Walkable {
		t.Error("tree_1 should exist and be non-walkable")
	}
	if door, ok := byName["building_door_open"]; !ok || !door.Walkable {
		t.Error("building_door_open should exist and be walkable")
	}
}

func TestItemRegistry(t *testing.T) {
	registry, err := LoadItemRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	key := registry.GetByID("key")
	if key == nil {
		t.Fatal("Key not found by ID")
	}
	if key.Name != "Key" {
		t.Errorf("Expected name 'Key', got %q", key.Name)
	}

	if registry.GetByID("sword") != nil {
		t.Error("unknown id should return nil")
	}
	if registry.Count() != len(registry.All()) {
		t.Error("Count and All disagree")
	}
}

func TestGlyphRune(t *testing.T) {
	def := TileDef{Glyph: "T"}
	if def.GlyphRune() != 'T' {
		t.Errorf("GlyphRune = %q, want 'T'", def.GlyphRune())
	}
	empty := TileDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("empty glyph = %q, want '?'", empty.GlyphRune())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"", false},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"#FF00001", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) failed: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", tt.input)
		}
	}
}
