// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package listview

import (
	"errors"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/rileylov/sortlist/internal/zones"
	"github.com/rileylov/sortlist/reorder"
)

// Model is a reorderable list rendered in the terminal. Rows are dragged
// by their grab handle and removed with their delete handle.
type Model struct {
	id         string
	title      string
	width      int
	itemHeight int
	highlights map[string]bool

	zm      zones.Manager
	locate  zones.Locator
	list    *reorder.List
	tree    *termTree
	pending []reorder.Event
	log     *zap.Logger
	err     error

	listOpts []reorder.Option
}

// Option configures a Model.
type Option func(*Model)

// WithZoneManager uses m for marking and locating zones instead of the
// global manager.
func WithZoneManager(m *zone.Manager) Option {
	return func(l *Model) {
		l.zm = zones.Manager{Zones: m}
		l.locate = l.zm
	}
}

// WithLocator overrides how zone ids map to screen rectangles.
func WithLocator(loc zones.Locator) Option {
	return func(l *Model) {
		l.locate = loc
	}
}

// WithItemHeight sets the number of rows each item occupies.
func WithItemHeight(h int) Option {
	return func(l *Model) {
		if h > 0 {
			l.itemHeight = h
		}
	}
}

// WithLogger sets the logger for the widget and its list.
func WithLogger(log *zap.Logger) Option {
	return func(l *Model) {
		if log != nil {
			l.log = log
			l.listOpts = append(l.listOpts, reorder.WithLogger(log))
		}
	}
}

// WithListOptions passes options through to the underlying reorder.List.
func WithListOptions(opts ...reorder.Option) Option {
	return func(l *Model) {
		l.listOpts = append(l.listOpts, opts...)
	}
}

// New creates a mounted list widget.
func New(title string, items []reorder.Item, opts ...Option) (*Model, error) {
	m := &Model{
		title:      title,
		itemHeight: 1,
		highlights: map[string]bool{},
		log:        zap.NewNop(),
		locate:     zones.Manager{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.id = m.zm.NewPrefix()

	m.tree = newTermTree(m)
	list, err := reorder.New(items, m.tree, m.listOpts...)
	if err != nil {
		return nil, err
	}
	if err := list.Mount(); err != nil {
		return nil, err
	}
	list.Subscribe(func(e reorder.Event) {
		m.pending = append(m.pending, e)
	})
	m.list = list
	return m, nil
}

// ID returns the zone prefix of the widget.
func (m *Model) ID() string { return m.id }

// Items returns the current committed order.
func (m *Model) Items() []reorder.Item { return m.list.Items() }

// List exposes the underlying engine.
func (m *Model) List() *reorder.List { return m.list }

// Err returns the last lifecycle error seen while handling input.
func (m *Model) Err() error { return m.err }

// SetHighlights marks items whose ids are set in ids.
func (m *Model) SetHighlights(ids map[string]bool) {
	m.highlights = map[string]bool{}
	for id, on := range ids {
		if on {
			m.highlights[id] = true
		}
	}
}

// Close unmounts the list, releasing any drag in progress.
func (m *Model) Close() error {
	return m.list.Unmount()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		// The terminal lost focus mid-drag; no release will follow.
		if m.list.Dragging() {
			m.list.Document().Dispatch(reorder.PointerEvent{Phase: reorder.PhaseCancel})
		}
	}
	return m, m.flush()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := image.Pt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		target := m.targetAt(p)
		if target.Item == "" {
			return
		}
		_, err := m.list.PointerDown(reorder.PointerEvent{Phase: reorder.PhaseDown, Pos: p, Target: target})
		if err != nil && !errors.Is(err, reorder.ErrDragActive) {
			m.err = err
		}
	case tea.MouseActionMotion:
		if m.list.Dragging() {
			m.list.Document().Dispatch(reorder.PointerEvent{Phase: reorder.PhaseMove, Pos: p})
		}
	case tea.MouseActionRelease:
		if m.list.Dragging() {
			m.list.Document().Dispatch(reorder.PointerEvent{Phase: reorder.PhaseUp, Pos: p})
		}
	}
}

// targetAt finds the grab or delete handle under p.
func (m *Model) targetAt(p image.Point) reorder.Target {
	for _, it := range m.list.Items() {
		if r, ok := m.locate.Locate(m.grabID(it.ID)); ok && p.In(r) {
			return reorder.Target{Item: it.ID, Zone: reorder.ZoneGrab}
		}
		if r, ok := m.locate.Locate(m.deleteID(it.ID)); ok && p.In(r) {
			return reorder.Target{Item: it.ID, Zone: reorder.ZoneDelete}
		}
	}
	return reorder.Target{}
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, e := range m.pending {
		m.log.Info("list changed", zap.String("list", m.id), zap.String("event", e.Describe()))
		cmds = append(cmds, eventCmd(m.id, e))
	}
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.tree.detached {
		return ""
	}
	w := m.rowWidth()
	header := m.mark(m.originID(), listHeaderStyle.Width(w).Render(m.title))

	var rows []string
	for _, s := range m.list.Slots() {
		if s.Placeholder {
			rows = append(rows, m.renderPlaceholder(w, s.Height))
			continue
		}
		rows = append(rows, m.renderRow(s.Item, w))
	}
	body := m.overlay(strings.Join(rows, "\n"), w)
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m *Model) rowWidth() int {
	if m.width > 0 {
		return m.width
	}
	w := lipgloss.Width(m.title)
	for _, it := range m.list.Items() {
		if iw := lipgloss.Width(it.Title) + 4; iw > w {
			w = iw
		}
	}
	return w
}

func (m *Model) renderRow(it reorder.Item, w int) string {
	grab := m.mark(m.grabID(it.ID), grabStyle.Render(grabGlyph))
	del := m.mark(m.deleteID(it.ID), deleteStyle.Render(deleteGlyph))
	style := itemStyle
	if m.highlights[it.ID] {
		style = matchStyle
	}
	titleW := w - lipgloss.Width(grabStyle.Render(grabGlyph)) - lipgloss.Width(deleteStyle.Render(deleteGlyph))
	if titleW < 1 {
		titleW = 1
	}
	title := style.Width(titleW).Render(ansi.Truncate(it.Title, titleW, "…"))
	row := lipgloss.JoinHorizontal(lipgloss.Top, grab, title, del)
	return lipgloss.NewStyle().Height(m.itemHeight).Render(row)
}

func (m *Model) renderPlaceholder(w, h int) string {
	line := placeholderStyle.Render(strings.Repeat(placeholderGlyph, w))
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// overlay draws the floating item over the rows at its absolute origin.
func (m *Model) overlay(body string, w int) string {
	item, origin, ok := m.list.Floating()
	if !ok {
		return body
	}
	top, _, ok := m.tree.top()
	if !ok {
		return body
	}
	lines := strings.Split(body, "\n")
	col := origin.X - top.X
	if col < 0 {
		col = 0
	}
	if col >= w {
		return body
	}
	float := floatingStyle.Width(w).Render(grabGlyph + " " + item.Title)
	for i := 0; i < m.itemHeight; i++ {
		row := origin.Y - top.Y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		text := float
		if i > 0 {
			text = floatingStyle.Width(w).Render("")
		}
		lines[row] = strings.Repeat(" ", col) + ansi.Truncate(text, w-col, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) mark(id, v string) string {
	return m.zm.Mark(id, v)
}

func (m *Model) originID() string         { return m.id + "origin" }
func (m *Model) grabID(item string) string { return m.id + "grab:" + item }
func (m *Model) deleteID(item string) string {
	return m.id + "del:" + item
}
