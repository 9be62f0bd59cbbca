package tilemap

import "github.com/samdwyer/wander/internal/gamedata"

// State is the read-only view of session state that conditions evaluate
// against.
type State interface {
	HasItem(itemID string) bool
}

// Host receives the mutations an event tree performs when triggered. The
// session controller is the live implementation; tests substitute a mock.
type Host interface {
	State
	AddMessage(msg string)
	AddGold(amount int)
	AddItem(def *gamedata.ItemDef)
	RemoveItem(itemID string)
}

// Event is a closed set of trigger actions. Variants are dispatched by
// type switch in MapEvent.run so adding a variant without handling it is
// caught at the single dispatch site.
type Event interface {
	isEvent()
}

// ShowMessage appends text to the hero's diary.
type ShowMessage struct {
	Text string
}

// GiveGold credits the hero's gold.
type GiveGold struct {
	Amount int
}

// AddItem adds an instance of the given item definition to the inventory.
type AddItem struct {
	Item *gamedata.ItemDef
}

// RemoveItem removes one inventory instance matching the definition id.
type RemoveItem struct {
	ItemID string
}

// ChangeTile replaces the owning map event's overlay tile. A nil NewTile
// clears the overlay, leaving the cell walkable.
type ChangeTile struct {
	NewTile *Tile
}

// Deactivate permanently suppresses the owning map event's triggering.
type Deactivate struct{}

// Composite runs its children in order.
type Composite struct {
	Children []Event
}

// Conditional runs Then or Else based on the condition at trigger time.
// Else may be nil.
type Conditional struct {
	Cond Condition
	Then Event
	Else Event
}

func (ShowMessage) isEvent() {}
func (GiveGold) isEvent()    {}
func (AddItem) isEvent()     {}
func (RemoveItem) isEvent()  {}
func (ChangeTile) isEvent()  {}
func (Deactivate) isEvent()  {}
func (Composite) isEvent()   {}
func (Conditional) isEvent() {}

// run executes one event node. The receiver is the owning map event, so
// composite and conditional children see the same owner without any stored
// back-reference.
func (m *MapEvent) run(ev Event, h Host) {
	switch e := ev.(type) {
	case ShowMessage:
		h.AddMessage(e.Text)
	case GiveGold:
		h.AddGold(e.Amount)
	case AddItem:
		h.AddItem(e.Item)
	case RemoveItem:
		h.RemoveItem(e.ItemID)
	case ChangeTile:
		m.Tile = e.NewTile
	case Deactivate:
		m.Active = false
	case Composite:
		for _, child := range e.Children {
			m.run(child, h)
		}
	case Conditional:
		if e.Cond.Evaluate(h) {
			m.run(e.Then, h)
		} else if e.Else != nil {
			m.run(e.Else, h)
		}
	}
}
