package tilemap

// Condition is a boolean predicate over live session state, evaluated each
// time a conditional event triggers. New predicates implement Evaluate
// without touching the Event variant set.
type Condition interface {
	Evaluate(state State) bool
}

// HasItem is true iff the hero's inventory contains an instance of the
// given item definition.
type HasItem struct {
	ItemID string
}

// Evaluate checks the inventory through the session state.
func (c HasItem) Evaluate(state State) bool {
	return state.HasItem(c.ItemID)
}
