package reorder

import "image"

// Session is one in-progress drag, from grab to release.
type Session struct {
	item   Item
	from   int
	offset image.Point
	pos    image.Point
	column int // left edge of the list, used for hit-testing
}

func newSession(item Item, from int, rect image.Rectangle, pointer image.Point) *Session {
	return &Session{
		item:   item,
		from:   from,
		offset: Offset(pointer, rect),
		pos:    pointer,
		column: rect.Min.X,
	}
}

// Item is the dragged item.
func (s *Session) Item() Item { return s.item }

// From is the index the item was grabbed at.
func (s *Session) From() int { return s.from }

// Offset is the pointer-to-item offset captured at grab time.
func (s *Session) Offset() image.Point { return s.offset }

// Pos is the last pointer position seen.
func (s *Session) Pos() image.Point { return s.pos }

// Origin is where the dragged item's top-left corner is drawn.
func (s *Session) Origin() image.Point { return Origin(s.pos, s.offset) }

// hitPoint is the point siblings are looked up at: the list's left edge on
// the pointer's row, so sideways drift off the list keeps reordering.
func (s *Session) hitPoint() image.Point { return image.Pt(s.column, s.pos.Y) }

func (s *Session) track(p image.Point) { s.pos = p }
