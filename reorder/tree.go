package reorder

import "image"

// Tree is the render tree a List drives. The list keeps the flow order
// itself (see List.Slots); a Tree answers geometry queries against what
// was last drawn and receives the visual instructions of a drag.
type Tree interface {
	// Bounds returns the on-screen rectangle of an in-flow item.
	Bounds(id string) (image.Rectangle, bool)
	// ItemAt returns the topmost visible item containing p.
	ItemAt(p image.Point) (string, bool)

	// Hide and Show toggle whether an item takes part in ItemAt.
	Hide(id string)
	Show(id string)

	// Lift takes an item out of the flow and pins it at rect.
	Lift(id string, rect image.Rectangle)
	// Float moves a lifted item so its top-left corner sits at origin.
	Float(id string, origin image.Point)
	// Settle returns a lifted item to normal flow.
	Settle(id string)

	// Remove drops a deleted item from the tree.
	Remove(id string)
	// Detach discards the whole rendered subtree.
	Detach()
}
