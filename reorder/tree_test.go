package reorder

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	rowHeight = 2
	rowWidth  = 20
)

// gridTree lays the list's slots out top to bottom, rowHeight rows each,
// the way a terminal renderer would.
type gridTree struct {
	list     *List
	hidden   map[string]bool
	lifted   map[string]image.Rectangle
	origins  map[string]image.Point
	removed  []string
	hides    int
	detached bool
}

func newGridTree() *gridTree {
	return &gridTree{
		hidden:  map[string]bool{},
		lifted:  map[string]image.Rectangle{},
		origins: map[string]image.Point{},
	}
}

func (g *gridTree) layout() ([]string, map[string]image.Rectangle) {
	var order []string
	rects := map[string]image.Rectangle{}
	y := 0
	for _, s := range g.list.Slots() {
		if s.Placeholder {
			y += s.Height
			continue
		}
		order = append(order, s.Item.ID)
		rects[s.Item.ID] = image.Rect(0, y, rowWidth, y+rowHeight)
		y += rowHeight
	}
	return order, rects
}

func (g *gridTree) Bounds(id string) (image.Rectangle, bool) {
	_, rects := g.layout()
	r, ok := rects[id]
	return r, ok
}

func (g *gridTree) ItemAt(p image.Point) (string, bool) {
	// A lifted item is drawn on top of the flow.
	for id, r := range g.lifted {
		o := g.origins[id]
		if !g.hidden[id] && p.In(r.Sub(r.Min).Add(o)) {
			return id, true
		}
	}
	order, rects := g.layout()
	for _, id := range order {
		if !g.hidden[id] && p.In(rects[id]) {
			return id, true
		}
	}
	return "", false
}

func (g *gridTree) Hide(id string) { g.hides++; g.hidden[id] = true }
func (g *gridTree) Show(id string) { delete(g.hidden, id) }

func (g *gridTree) Lift(id string, r image.Rectangle) {
	g.lifted[id] = r
	g.origins[id] = r.Min
}

func (g *gridTree) Float(id string, o image.Point) { g.origins[id] = o }

func (g *gridTree) Settle(id string) {
	delete(g.lifted, id)
	delete(g.origins, id)
}

func (g *gridTree) Remove(id string) { g.removed = append(g.removed, id) }
func (g *gridTree) Detach()          { g.detached = true }

type recorder struct {
	events []Event
}

func (r *recorder) record(e Event) { r.events = append(r.events, e) }

func items(ids ...string) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{ID: id, Title: "item " + id}
	}
	return out
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func newTestList(t *testing.T, opts []Option, id ...string) (*List, *gridTree, *recorder) {
	t.Helper()
	tree := newGridTree()
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	l, err := New(items(id...), tree, opts...)
	require.NoError(t, err)
	tree.list = l
	require.NoError(t, l.Mount())
	rec := &recorder{}
	l.Subscribe(rec.record)
	return l, tree, rec
}

func grab(t *testing.T, l *List, id string, p image.Point) {
	t.Helper()
	ok, err := l.PointerDown(PointerEvent{Phase: PhaseDown, Pos: p, Target: Target{Item: id, Zone: ZoneGrab}})
	require.NoError(t, err)
	require.True(t, ok, "grab %s", id)
}

func move(l *List, p image.Point) {
	l.Document().Dispatch(PointerEvent{Phase: PhaseMove, Pos: p})
}

func release(l *List, p image.Point) {
	l.Document().Dispatch(PointerEvent{Phase: PhaseUp, Pos: p})
}

// rowOf returns a point on the given row of an item in the original,
// undragged layout.
func rowOf(index, row int) image.Point {
	return image.Pt(3, index*rowHeight+row)
}
