package listview

import (
	"image"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rileylov/sortlist/reorder"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// gridLocator places the header at a fixed rectangle and derives handle
// zones from the row layout: grab handle on the left, delete on the right.
type gridLocator struct {
	m      *Model
	origin image.Rectangle
}

func (g *gridLocator) Locate(id string) (image.Rectangle, bool) {
	switch {
	case id == g.m.originID():
		return g.origin, true
	case strings.HasPrefix(id, g.m.id+"grab:"):
		r, ok := g.m.tree.Bounds(strings.TrimPrefix(id, g.m.id+"grab:"))
		return image.Rect(r.Min.X, r.Min.Y, r.Min.X+2, r.Max.Y), ok
	case strings.HasPrefix(id, g.m.id+"del:"):
		r, ok := g.m.tree.Bounds(strings.TrimPrefix(id, g.m.id+"del:"))
		return image.Rect(r.Max.X-2, r.Min.Y, r.Max.X, r.Max.Y), ok
	}
	return image.Rectangle{}, false
}

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	loc := &gridLocator{origin: image.Rect(0, 0, 30, 2)}
	opts = append([]Option{WithLocator(loc), WithLogger(zaptest.NewLogger(t))}, opts...)
	m, err := New("Fruits", []reorder.Item{
		{ID: "a", Title: "Apple"},
		{ID: "b", Title: "Banana"},
		{ID: "c", Title: "Cherry"},
		{ID: "d", Title: "Date"},
	}, opts...)
	require.NoError(t, err)
	loc.m = m
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func titles(items []reorder.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestDragReordersRows(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(mouse(tea.MouseActionPress, 0, 2))
	assert.Nil(t, cmd)
	assert.True(t, m.List().Dragging())

	_, cmd = m.Update(mouse(tea.MouseActionMotion, 5, 4))
	assert.Nil(t, cmd)

	_, cmd = m.Update(mouse(tea.MouseActionRelease, 5, 4))
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	got, ok := msgs[0].(ReorderedMsg)
	require.True(t, ok)
	assert.Equal(t, m.ID(), got.List)
	assert.Equal(t, "a", got.Item.ID)
	assert.Equal(t, 0, got.From)
	assert.Equal(t, 2, got.To)
	assert.Equal(t, []string{"Banana", "Cherry", "Apple", "Date"}, titles(m.Items()))
	assert.False(t, m.List().Dragging())
}

func TestDragUpOneRowItems(t *testing.T) {
	m := newTestModel(t)

	m.Update(mouse(tea.MouseActionPress, 1, 5))
	m.Update(mouse(tea.MouseActionMotion, 4, 3))
	m.Update(mouse(tea.MouseActionMotion, 4, 2))
	_, cmd := m.Update(mouse(tea.MouseActionRelease, 4, 2))

	require.Len(t, collect(cmd), 1)
	assert.Equal(t, []string{"Date", "Apple", "Banana", "Cherry"}, titles(m.Items()))
}

func countLines(view, substr string) int {
	n := 0
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

func TestDragTwoRowItems(t *testing.T) {
	m := newTestModel(t, WithItemHeight(2))
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})

	// Rows start under the header at y=2: a 2-3, b 4-5, c 6-7, d 8-9.
	m.Update(mouse(tea.MouseActionPress, 0, 5))
	require.True(t, m.List().Dragging())
	assert.Equal(t, 2, m.List().Placeholder().Height)

	// Off the bottom the placeholder keeps b's full height.
	m.Update(mouse(tea.MouseActionMotion, 1, 30))
	out := zone.Scan(m.View())
	assert.Equal(t, 2, countLines(out, placeholderGlyph))
	assert.NotContains(t, out, "Banana")

	// Lower half of c: the placeholder moves below it and the floating
	// row, two lines tall, covers it.
	m.Update(mouse(tea.MouseActionMotion, 1, 7))
	_, origin, ok := m.List().Floating()
	require.True(t, ok)
	assert.Equal(t, image.Pt(1, 6), origin)
	out = zone.Scan(m.View())
	assert.Equal(t, 0, countLines(out, placeholderGlyph))
	assert.Equal(t, 1, countLines(out, "Banana"))

	_, cmd := m.Update(mouse(tea.MouseActionRelease, 1, 7))
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	got, ok := msgs[0].(ReorderedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, got.From)
	assert.Equal(t, 2, got.To)
	assert.Equal(t, []string{"Apple", "Cherry", "Banana", "Date"}, titles(m.Items()))
	assert.Equal(t, 0, countLines(zone.Scan(m.View()), placeholderGlyph))
}

func TestDeleteHandle(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(mouse(tea.MouseActionPress, 29, 3))
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	got, ok := msgs[0].(DeletedMsg)
	require.True(t, ok)
	assert.Equal(t, "b", got.Item.ID)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, []string{"Apple", "Cherry", "Date"}, titles(m.Items()))
	assert.False(t, m.List().Dragging())
}

func TestPressOutsideHandles(t *testing.T) {
	m := newTestModel(t)

	for _, msg := range []tea.MouseMsg{
		mouse(tea.MouseActionPress, 10, 3),
		mouse(tea.MouseActionPress, 0, 40),
		{X: 0, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		mouse(tea.MouseActionRelease, 0, 2),
	} {
		_, cmd := m.Update(msg)
		assert.Nil(t, cmd)
	}
	assert.False(t, m.List().Dragging())
	assert.Len(t, m.Items(), 4)
}

func TestSecondPressDuringDragIgnored(t *testing.T) {
	m := newTestModel(t)

	m.Update(mouse(tea.MouseActionPress, 0, 2))
	_, cmd := m.Update(mouse(tea.MouseActionPress, 29, 4))
	assert.Nil(t, cmd)
	assert.NoError(t, m.Err())
	assert.Len(t, m.Items(), 4)

	_, cmd = m.Update(mouse(tea.MouseActionRelease, 0, 2))
	assert.Nil(t, cmd)
}

func TestBlurCancelsDrag(t *testing.T) {
	m := newTestModel(t)

	m.Update(mouse(tea.MouseActionPress, 0, 2))
	m.Update(mouse(tea.MouseActionMotion, 5, 4))
	_, cmd := m.Update(tea.BlurMsg{})

	require.Len(t, collect(cmd), 1)
	assert.False(t, m.List().Dragging())
	assert.Equal(t, 0, m.List().Document().Len())
	assert.Equal(t, []string{"Banana", "Cherry", "Apple", "Date"}, titles(m.Items()))
}

func TestBlurRevertPolicy(t *testing.T) {
	m := newTestModel(t, WithListOptions(reorder.WithCancelPolicy(reorder.CancelRevert)))

	m.Update(mouse(tea.MouseActionPress, 0, 2))
	m.Update(mouse(tea.MouseActionMotion, 5, 4))
	_, cmd := m.Update(tea.BlurMsg{})

	assert.Nil(t, cmd)
	assert.Equal(t, []string{"Apple", "Banana", "Cherry", "Date"}, titles(m.Items()))
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	out := zone.Scan(m.View())
	for _, s := range []string{"Fruits", "Apple", "Banana", "Cherry", "Date", grabGlyph, deleteGlyph} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, placeholderGlyph)

	// Dragged below the rows: the placeholder holds the origin slot and
	// the floating row is out of view.
	m.Update(mouse(tea.MouseActionPress, 0, 2))
	m.Update(mouse(tea.MouseActionMotion, 3, 20))
	out = zone.Scan(m.View())
	assert.Contains(t, out, placeholderGlyph)
	assert.NotContains(t, out, "Apple")

	// Over Cherry the floating row is drawn where it would land.
	m.Update(mouse(tea.MouseActionMotion, 3, 4))
	assert.Contains(t, zone.Scan(m.View()), "Apple")

	m.Update(mouse(tea.MouseActionRelease, 3, 4))
	assert.NotContains(t, zone.Scan(m.View()), placeholderGlyph)
}

func TestClose(t *testing.T) {
	m := newTestModel(t)
	m.Update(mouse(tea.MouseActionPress, 0, 2))

	require.NoError(t, m.Close())
	assert.Empty(t, m.View())
	assert.Equal(t, []string{"Apple", "Banana", "Cherry", "Date"}, titles(m.Items()))

	m.Update(mouse(tea.MouseActionPress, 29, 3))
	assert.ErrorIs(t, m.Err(), reorder.ErrUnmounted)
	assert.Len(t, m.Items(), 4)
}

func TestDuplicateItems(t *testing.T) {
	_, err := New("dup", []reorder.Item{{ID: "x"}, {ID: "x"}})
	assert.ErrorIs(t, err, reorder.ErrDuplicateItem)
}
