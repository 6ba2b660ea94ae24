package listview

import (
	"image"

	"github.com/rileylov/sortlist/reorder"
)

// termTree is the terminal rendition of reorder.Tree. Rows are laid out
// under the list header from the list's slots, so geometry always matches
// what View draws next.
type termTree struct {
	m        *Model
	hidden   map[string]bool
	floating string
	rect     image.Rectangle
	origin   image.Point
	detached bool
}

func newTermTree(m *Model) *termTree {
	return &termTree{m: m, hidden: map[string]bool{}}
}

// top returns the top-left corner of the first row and the row width.
func (t *termTree) top() (image.Point, int, bool) {
	r, ok := t.m.locate.Locate(t.m.originID())
	if !ok {
		return image.Point{}, 0, false
	}
	return image.Pt(r.Min.X, r.Max.Y), r.Dx(), true
}

func (t *termTree) layout(fn func(id string, r image.Rectangle) bool) {
	p, w, ok := t.top()
	if !ok {
		return
	}
	y := p.Y
	for _, s := range t.m.list.Slots() {
		h := t.m.itemHeight
		if s.Placeholder {
			h = s.Height
		} else if !fn(s.Item.ID, image.Rect(p.X, y, p.X+w, y+h)) {
			return
		}
		y += h
	}
}

func (t *termTree) Bounds(id string) (image.Rectangle, bool) {
	var out image.Rectangle
	var found bool
	t.layout(func(got string, r image.Rectangle) bool {
		if got == id {
			out, found = r, true
			return false
		}
		return true
	})
	return out, found
}

func (t *termTree) ItemAt(p image.Point) (string, bool) {
	if t.floating != "" && !t.hidden[t.floating] && p.In(t.floatRect()) {
		return t.floating, true
	}
	var out string
	t.layout(func(id string, r image.Rectangle) bool {
		if !t.hidden[id] && p.In(r) {
			out = id
			return false
		}
		return true
	})
	return out, out != ""
}

func (t *termTree) Hide(id string) { t.hidden[id] = true }
func (t *termTree) Show(id string) { delete(t.hidden, id) }

func (t *termTree) Lift(id string, r image.Rectangle) {
	t.floating = id
	t.rect = r
	t.origin = r.Min
}

func (t *termTree) Float(id string, origin image.Point) {
	if id == t.floating {
		t.origin = origin
	}
}

func (t *termTree) Settle(id string) {
	if id == t.floating {
		t.floating = ""
		t.rect = image.Rectangle{}
		t.origin = image.Point{}
	}
}

func (t *termTree) Remove(id string) {
	delete(t.hidden, id)
	delete(t.m.highlights, id)
}

func (t *termTree) Detach() {
	t.detached = true
	t.floating = ""
}

func (t *termTree) floatRect() image.Rectangle {
	return t.rect.Sub(t.rect.Min).Add(t.origin)
}

var _ reorder.Tree = (*termTree)(nil)
