// Package entity provides the hero and the items they carry.
package entity

// Hero is the single player character. State is mutated only through the
// session controller, which forwards to these methods and notifies the view.
type Hero struct {
	Name      string
	Level     int
	XP        int
	Gold      int
	Energy    int
	MaxEnergy int
	X, Y      int // grid-local position in the current location

	diary     []string
	inventory []*Item
}

// NewHero creates a level-1 hero at the default starting position.
func NewHero(name string) *Hero {
	return &Hero{
		Name:      name,
		Level:     1,
		Gold:      0,
		Energy:    10,
		MaxEnergy: 10,
		X:         5,
		Y:         5,
	}
}

// AddGold credits the hero's gold.
func (h *Hero) AddGold(amount int) {
	h.Gold += amount
}

// AddDiaryEntry appends a line to the hero's diary.
func (h *Hero) AddDiaryEntry(entry string) {
	h.diary = append(h.diary, entry)
}

// Diary returns the diary entries in order.
func (h *Hero) Diary() []string {
	return h.diary
}

// AddItem puts an item instance into the inventory.
func (h *Hero) AddItem(item *Item) {
	h.inventory = append(h.inventory, item)
}

// RemoveItem removes the first inventory instance whose definition id
// matches, returning true if one was removed.
func (h *Hero) RemoveItem(itemID string) bool {
	for i, item := range h.inventory {
		if item.Def.ID == itemID {
			h.inventory = append(h.inventory[:i], h.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the inventory contains an instance of the given
// item definition.
func (h *Hero) HasItem(itemID string) bool {
	for _, item := range h.inventory {
		if item.Def.ID == itemID {
			return true
		}
	}
	return false
}

// Inventory returns the carried item instances in order.
func (h *Hero) Inventory() []*Item {
	return h.inventory
}
