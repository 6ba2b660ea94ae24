// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package slider

import (
	"fmt"
	"image"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/rileylov/sortlist/internal/zones"
)

const (
	minTrackWidth = 2
	thumbGlyph    = "●"
	trackGlyph    = "─"
	rangeGlyph    = "━"
)

var (
	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})

	thumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})

	// Style for the thumb being dragged
	thumbActiveStyle = thumbStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})
)

// RangeMsg is emitted when a drag leaves the slider on a new range.
type RangeMsg struct {
	ID   string
	Low  int
	High int
}

// Option configures a Model.
type Option func(*Model)

// WithZoneManager uses m instead of the global bubblezone manager.
func WithZoneManager(m *zone.Manager) Option {
	return func(s *Model) {
		s.zm = zones.Manager{Zones: m}
		s.locate = s.zm
	}
}

// WithLocator overrides how zone ids map to screen rectangles.
func WithLocator(loc zones.Locator) Option {
	return func(s *Model) {
		s.locate = loc
	}
}

// WithLogger sets the slider's logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Model) {
		if log != nil {
			s.log = log
		}
	}
}

// Model is a dual-handle range slider. Each thumb is dragged along the
// track; the low thumb never passes the high one.
type Model struct {
	id       string
	min, max int
	low      int
	high     int
	width    int

	zm     zones.Manager
	locate zones.Locator
	drag   *DragHandler
	log    *zap.Logger

	// range at the moment the current drag started
	startLow, startHigh int
}

// New creates a slider over [lo, hi] selecting [low, high].
func New(lo, hi, low, high int, opts ...Option) (*Model, error) {
	if lo >= hi {
		return nil, fmt.Errorf("slider: min %d must be below max %d", lo, hi)
	}
	s := &Model{
		min:    lo,
		max:    hi,
		width:  20,
		locate: zones.Manager{},
		drag:   NewDragHandler(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.id = s.zm.NewPrefix()
	s.SetRange(low, high)
	return s, nil
}

// Low returns the lower selected value.
func (s *Model) Low() int { return s.low }

// High returns the upper selected value.
func (s *Model) High() int { return s.high }

// Dragging reports whether a thumb is held.
func (s *Model) Dragging() bool { return s.drag.IsDragging() }

// SetRange clamps and stores a new range.
func (s *Model) SetRange(low, high int) {
	if low > high {
		low, high = high, low
	}
	s.low = clamp(low, s.min, s.max)
	s.high = clamp(high, s.min, s.max)
}

func (s *Model) Init() tea.Cmd {
	return nil
}

func (s *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = max(msg.Width, minTrackWidth)
	case tea.MouseMsg:
		wasDragging := s.drag.IsDragging()
		handled, handleID, x := s.drag.HandleMouseEvent(msg, s.hit)
		if !handled {
			return s, nil
		}
		if !wasDragging {
			s.startLow, s.startHigh = s.low, s.high
			s.log.Debug("thumb grabbed", zap.String("thumb", handleID))
			return s, nil
		}
		s.moveThumb(handleID, x)
		if !s.drag.IsDragging() {
			return s, s.settle()
		}
	case tea.BlurMsg:
		if _, ok := s.drag.Cancel(); ok {
			return s, s.settle()
		}
	}
	return s, nil
}

// settle ends a drag and reports the range if it changed.
func (s *Model) settle() tea.Cmd {
	if s.low == s.startLow && s.high == s.startHigh {
		return nil
	}
	s.log.Debug("range changed", zap.Int("low", s.low), zap.Int("high", s.high))
	msg := RangeMsg{ID: s.id, Low: s.low, High: s.high}
	return func() tea.Msg { return msg }
}

// hit finds the thumb under p. When both thumbs share a cell the low one
// is taken, unless it already sits at the minimum.
func (s *Model) hit(p image.Point) (string, bool) {
	inLow := s.in(s.lowID(), p)
	inHigh := s.in(s.highID(), p)
	switch {
	case inLow && inHigh:
		if s.low == s.min {
			return s.highID(), true
		}
		return s.lowID(), true
	case inLow:
		return s.lowID(), true
	case inHigh:
		return s.highID(), true
	}
	return "", false
}

func (s *Model) in(id string, p image.Point) bool {
	r, ok := s.locate.Locate(id)
	return ok && p.In(r)
}

func (s *Model) moveThumb(handleID string, x int) {
	track, ok := s.locate.Locate(s.trackID())
	if !ok {
		return
	}
	v := s.valueAt(x - track.Min.X)
	switch handleID {
	case s.lowID():
		s.low = min(v, s.high)
	case s.highID():
		s.high = max(v, s.low)
	}
}

// valueAt maps a track column to a value.
func (s *Model) valueAt(col int) int {
	span := float64(s.max - s.min)
	v := s.min + int(math.Round(float64(col)*span/float64(s.width-1)))
	return clamp(v, s.min, s.max)
}

// colOf maps a value to a track column.
func (s *Model) colOf(v int) int {
	span := float64(s.max - s.min)
	return int(math.Round(float64(v-s.min) * float64(s.width-1) / span))
}

func (s *Model) View() string {
	lo, hi := s.colOf(s.low), s.colOf(s.high)

	lowThumb := s.thumb(s.lowID())
	highThumb := s.thumb(s.highID())

	var b strings.Builder
	b.WriteString(trackStyle.Render(strings.Repeat(trackGlyph, lo)))
	if lo == hi {
		b.WriteString(s.zm.Mark(s.lowID(), s.zm.Mark(s.highID(), lowThumb)))
	} else {
		b.WriteString(s.zm.Mark(s.lowID(), lowThumb))
		b.WriteString(rangeStyle.Render(strings.Repeat(rangeGlyph, hi-lo-1)))
		b.WriteString(s.zm.Mark(s.highID(), highThumb))
	}
	b.WriteString(trackStyle.Render(strings.Repeat(trackGlyph, s.width-hi-1)))

	label := labelStyle.Render(fmt.Sprintf("%d – %d", s.low, s.high))
	return lipgloss.JoinVertical(lipgloss.Left, label, s.zm.Mark(s.trackID(), b.String()))
}

func (s *Model) thumb(id string) string {
	if s.drag.IsDragging() && s.drag.HandleID() == id {
		return thumbActiveStyle.Render(thumbGlyph)
	}
	return thumbStyle.Render(thumbGlyph)
}

func (s *Model) lowID() string   { return s.id + "low" }
func (s *Model) highID() string  { return s.id + "high" }
func (s *Model) trackID() string { return s.id + "track" }

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
