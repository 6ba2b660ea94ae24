package reorder

import "image"

// Placement says on which side of a candidate item the placeholder goes.
type Placement int

const (
	Before Placement = iota
	After
)

func (p Placement) String() string {
	switch p {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "unknown"
	}
}

// Offset returns the pointer position relative to the top-left corner of
// rect. It is frozen when a drag starts.
func Offset(pointer image.Point, rect image.Rectangle) image.Point {
	return pointer.Sub(rect.Min)
}

// Origin is the top-left corner that keeps a dragged item at offset from
// the pointer.
func Origin(pointer, offset image.Point) image.Point {
	return pointer.Sub(offset)
}

// Place reports whether pointer lies in the upper or lower half of target.
// Pointer positions are cells, so the pointer is treated as sitting in the
// middle of its row; the middle row of an odd-height target resolves to mid.
func Place(pointer image.Point, target image.Rectangle, mid Placement) Placement {
	d := 2*(pointer.Y-target.Min.Y) + 1
	switch h := target.Dy(); {
	case d < h:
		return Before
	case d > h:
		return After
	}
	return mid
}

// hitTest finds the item under p with the dragged item hidden, so the
// dragged item is never reported as its own neighbor.
func hitTest(t Tree, p image.Point, dragged string) (string, image.Rectangle, bool) {
	t.Hide(dragged)
	id, ok := t.ItemAt(p)
	t.Show(dragged)
	if !ok || id == dragged {
		return "", image.Rectangle{}, false
	}
	rect, ok := t.Bounds(id)
	if !ok {
		return "", image.Rectangle{}, false
	}
	return id, rect, true
}
