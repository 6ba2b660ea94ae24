package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/rileylov/sortlist/internal/split"
	"github.com/rileylov/sortlist/internal/zones"
	"github.com/rileylov/sortlist/listview"
	"github.com/rileylov/sortlist/reorder"
	"github.com/rileylov/sortlist/slider"
)

const historyLimit = 50

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type model struct {
	cfg     Config
	initial []reorder.Item
	log     *zap.Logger
	zm      zones.Manager

	width, height int

	header    *header
	footer    *footer
	split     *split.Model
	search    textinput.Model
	list      *listview.Model
	slider    *slider.Model
	history   table.Model
	historyN  int
	mouse     bool
	status    string
	copyOrder func(string) error
}

func newModel(cfg Config, items []reorder.Item, log *zap.Logger, zm zones.Manager) (*model, error) {
	m := &model{
		cfg:       cfg,
		initial:   items,
		log:       log,
		zm:        zm,
		header:    newHeader("Reorderable list", zm),
		footer:    &footer{},
		split:     split.New(0.6, zm),
		mouse:     cfg.Mouse,
		status:    "Drag ⠿ to reorder, ✕ to delete",
		copyOrder: clipboard.WriteAll,
	}

	ti := textinput.New()
	ti.Placeholder = "Highlight items..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30
	m.search = ti

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Event", Width: 10},
			{Title: "Detail", Width: 30},
		}),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)
	m.history = t

	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// reset rebuilds the list and slider from the initial items.
func (m *model) reset() error {
	if m.list != nil {
		if err := m.list.Close(); err != nil {
			m.log.Warn("closing list", zap.Error(err))
		}
	}
	policy, err := reorder.ParseCancelPolicy(m.cfg.CancelPolicy)
	if err != nil {
		return err
	}
	listOpts := []reorder.Option{reorder.WithCancelPolicy(policy)}
	if doc := reorder.DefaultDocument(); doc != nil {
		listOpts = append(listOpts, reorder.WithDocument(doc))
	}
	list, err := listview.New("Items", m.initial,
		listview.WithZoneManager(m.zm.Zones),
		listview.WithItemHeight(m.cfg.ItemHeight),
		listview.WithLogger(m.log),
		listview.WithListOptions(listOpts...),
	)
	if err != nil {
		return err
	}
	lo, hi, low, high := m.cfg.sliderRange(len(m.initial))
	sl, err := slider.New(lo, hi, low, high,
		slider.WithZoneManager(m.zm.Zones),
		slider.WithLogger(m.log),
	)
	if err != nil {
		return err
	}
	m.list, m.slider = list, sl
	m.applySearch()
	m.resize()
	return nil
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+e":
			m.mouse = !m.mouse
			m.zm.SetEnabled(m.mouse)
			return m, nil
		case "enter":
			return m, m.copy(true)
		}

	case tea.MouseMsg:
		return m, m.routeMouse(msg)

	case tea.BlurMsg:
		_, c1 := m.list.Update(msg)
		_, c2 := m.slider.Update(msg)
		return m, tea.Batch(c1, c2)

	case actionMsg:
		switch msg.action {
		case actionCopy:
			return m, m.copy(false)
		case actionReset:
			if err := m.reset(); err != nil {
				m.status = fmt.Sprintf("Reset failed: %v", err)
			} else {
				m.status = "Reset"
				m.record("reset", fmt.Sprintf("%d items", len(m.initial)))
			}
			return m, nil
		case actionQuit:
			return m, tea.Quit
		}

	case listview.ReorderedMsg:
		m.record("reordered", fmt.Sprintf("%s: %d → %d", msg.Item.Title, msg.From+1, msg.To+1))
		m.status = "Moved " + msg.Item.Title
		return m, nil

	case listview.DeletedMsg:
		m.record("deleted", fmt.Sprintf("%s (was #%d)", msg.Item.Title, msg.Index+1))
		m.status = "Deleted " + msg.Item.Title
		return m, nil

	case slider.RangeMsg:
		m.record("range", fmt.Sprintf("copy positions %d–%d", msg.Low, msg.High))
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	if m.search.Value() != before {
		m.applySearch()
	}
	return m, tea.Batch(cmds...)
}

// routeMouse gives an active drag all pointer events; otherwise the first
// component that consumes the event wins.
func (m *model) routeMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case m.split.Dragging():
		m.split.HandleMouse(msg)
		m.resize()
		return nil
	case m.list.List().Dragging():
		_, cmd := m.list.Update(msg)
		return cmd
	case m.slider.Dragging():
		_, cmd := m.slider.Update(msg)
		return cmd
	}

	if m.split.HandleMouse(msg) {
		return nil
	}
	_, hc := m.header.Update(msg)
	_, lc := m.list.Update(msg)
	_, sc := m.slider.Update(msg)
	return tea.Batch(hc, lc, sc)
}

// applySearch highlights the items matching the search box.
func (m *model) applySearch() {
	query := m.search.Value()
	items := m.list.Items()
	hl := map[string]bool{}
	if query != "" {
		titles := make([]string, len(items))
		for i, it := range items {
			titles[i] = it.Title
		}
		for _, match := range fuzzy.Find(query, titles) {
			hl[items[match.Index].ID] = true
		}
	}
	m.list.SetHighlights(hl)
}

// selection returns the titles inside the slider's position range.
func (m *model) selection() []string {
	items := m.list.Items()
	lo := max(m.slider.Low(), 1)
	hi := min(m.slider.High(), len(items))
	var out []string
	for i := lo; i <= hi; i++ {
		out = append(out, items[i-1].Title)
	}
	return out
}

func (m *model) copy(quit bool) tea.Cmd {
	sel := m.selection()
	if err := m.copyOrder(strings.Join(sel, "\n")); err != nil {
		m.status = fmt.Sprintf("Couldn't write to clipboard: %v", err)
		m.log.Warn("clipboard write failed", zap.Error(err))
		return nil
	}
	m.status = fmt.Sprintf("Copied %d items", len(sel))
	m.record("copied", strings.Join(sel, ", "))
	if quit {
		return tea.Quit
	}
	return nil
}

func (m *model) record(kind, detail string) {
	m.historyN++
	rows := append([]table.Row{{strconv.Itoa(m.historyN), kind, detail}}, m.history.Rows()...)
	if len(rows) > historyLimit {
		rows = rows[:historyLimit]
	}
	m.history.SetRows(rows)
	m.log.Debug("history", zap.String("kind", kind), zap.String("detail", detail))
}

// resize hands each component its share of the window.
func (m *model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := m.width - 2
	m.header.Update(tea.WindowSizeMsg{Width: inner, Height: 1})
	m.footer.width = inner

	bodyH := max(m.height-2-2, 1)
	m.split.SetSize(inner, bodyH)
	lw, rw := m.split.Widths()
	m.list.Update(tea.WindowSizeMsg{Width: lw, Height: bodyH})
	m.slider.Update(tea.WindowSizeMsg{Width: lw, Height: 2})
	m.history.SetWidth(rw)
	m.history.SetHeight(max(bodyH-1, 2))
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.search.View(),
		"",
		m.list.View(),
		"",
		m.slider.View(),
	)
	right := m.history.View()
	return m.zm.Scan(baseStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.split.View(left, right),
		m.footer.View(m.status, len(m.list.Items()), m.mouse),
	)))
}
