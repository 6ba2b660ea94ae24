// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package split lays out two panes side by side with a draggable divider.
package split

import (
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/sortlist/internal/zones"
	"github.com/rileylov/sortlist/slider"
)

const (
	handleWidth   = 1    // Width of the divider in characters
	minWidthChars = 20   // Minimum width in characters for either pane
	maxProportion = 0.75 // Maximum proportion for either pane
)

var (
	handleStyle = lipgloss.NewStyle().
			Width(handleWidth).
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	// Style for the divider while it is being dragged
	handleActiveStyle = handleStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})
)

// Model tracks the proportion of the width given to the left pane.
type Model struct {
	id     string
	width  int
	height int
	left   float64

	zm     zones.Manager
	locate zones.Locator
	drag   *slider.DragHandler
}

// New creates a split giving proportion left (0..1) to the left pane.
func New(left float64, zm zones.Manager) *Model {
	m := &Model{
		id:     zm.NewPrefix(),
		zm:     zm,
		locate: zm,
		drag:   slider.NewDragHandler(),
	}
	m.left = m.clampProportion(left)
	return m
}

// WithLocator overrides the divider hit-testing, for tests.
func (m *Model) WithLocator(loc zones.Locator) *Model {
	m.locate = loc
	return m
}

// SetSize stores the area available to both panes and the divider.
func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.left = m.clampProportion(m.left)
}

// Widths returns the widths of the left and right panes.
func (m *Model) Widths() (int, int) {
	avail := m.width - handleWidth
	if avail <= 0 {
		return 0, 0
	}
	l := int(float64(avail) * m.left)
	return l, avail - l
}

// Dragging reports whether the divider is held.
func (m *Model) Dragging() bool {
	return m.drag.IsDragging()
}

// HandleMouse moves the divider. It reports whether msg was consumed.
func (m *Model) HandleMouse(msg tea.MouseMsg) bool {
	wasDragging := m.drag.IsDragging()
	handled, _, x := m.drag.HandleMouseEvent(msg, m.hit)
	if !handled {
		return false
	}
	if wasDragging {
		m.moveTo(x)
	}
	return true
}

func (m *Model) hit(p image.Point) (string, bool) {
	r, ok := m.locate.Locate(m.handleID())
	if ok && p.In(r) {
		return m.handleID(), true
	}
	return "", false
}

// moveTo places the divider at screen column x.
func (m *Model) moveTo(x int) {
	avail := m.width - handleWidth
	if avail <= 0 {
		return
	}
	origin := 0
	if r, ok := m.locate.Locate(m.id + "panes"); ok {
		origin = r.Min.X
	}
	m.left = m.clampProportion(float64(x-origin) / float64(avail))
}

// clampProportion keeps both panes at least minWidthChars wide and at most
// maxProportion of the width.
func (m *Model) clampProportion(p float64) float64 {
	lo, hi := 1-maxProportion, maxProportion
	if avail := m.width - handleWidth; avail > 0 {
		if minP := float64(minWidthChars) / float64(avail); minP > lo {
			lo = minP
		}
	}
	if lo > hi {
		return 0.5
	}
	return min(max(p, lo), hi)
}

// View joins the two rendered panes around the divider.
func (m *Model) View(left, right string) string {
	lw, rw := m.Widths()
	style := handleStyle
	if m.drag.IsDragging() {
		style = handleActiveStyle
	}
	bar := make([]string, max(m.height, 1))
	for i := range bar {
		bar[i] = "│"
	}
	handle := m.zm.Mark(m.handleID(), style.Render(strings.Join(bar, "\n")))

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(lw).Height(m.height).MaxHeight(m.height).Render(left),
		handle,
		lipgloss.NewStyle().Width(rw).Height(m.height).MaxHeight(m.height).Render(right),
	)
	return m.zm.Mark(m.id+"panes", panes)
}

func (m *Model) handleID() string { return m.id + "handle" }
