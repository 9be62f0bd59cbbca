package gamedata

import "errors"

// ItemDef defines a TYPE of item loaded from JSON. Individual occurrences
// in a hero's inventory are entity.Item instances referencing one of these.
type ItemDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "key")
	Name        string `json:"name"`        // Display name (e.g., "Key")
	Description string `json:"description"` // Flavor text shown in the inventory
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// ItemRegistry holds loaded item definitions and provides lookup utilities.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}
