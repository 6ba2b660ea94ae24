package reorder

import "fmt"

// Event is emitted by a List after its order changed.
type Event interface {
	Describe() string
}

// Reordered reports a committed drag that moved Item from From to To.
type Reordered struct {
	Item Item
	From int
	To   int
}

func (e Reordered) Describe() string {
	return fmt.Sprintf(`reordered item:%q from:%d to:%d`, e.Item.ID, e.From, e.To)
}

// Deleted reports an item removed through its delete zone.
type Deleted struct {
	Item  Item
	Index int
}

func (e Deleted) Describe() string {
	return fmt.Sprintf(`deleted item:%q index:%d`, e.Item.ID, e.Index)
}
