// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/sortlist/internal/zones"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)
)

// action is what a header button asks the app to do.
type action int

const (
	actionCopy action = iota
	actionReset
	actionQuit
)

// actionMsg is sent when a header button is clicked.
type actionMsg struct {
	action action
}

type headerButton struct {
	label  string
	action action
}

type header struct {
	id      string
	width   int
	title   string
	buttons []headerButton
	zm      zones.Manager
	locate  zones.Locator
}

func newHeader(title string, zm zones.Manager) *header {
	return &header{
		id:     zm.NewPrefix(),
		title:  title,
		zm:     zm,
		locate: zm,
		buttons: []headerButton{
			{label: "Copy", action: actionCopy},
			{label: "Reset", action: actionReset},
			{label: "Quit", action: actionQuit},
		},
	}
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return h, nil
		}
		p := image.Pt(msg.X, msg.Y)
		for i, b := range h.buttons {
			if r, ok := h.locate.Locate(h.getButtonID(i)); ok && p.In(r) {
				a := b.action
				return h, func() tea.Msg { return actionMsg{action: a} }
			}
		}
	}
	return h, nil
}

func (h *header) View() string {
	var buttonViews []string
	for i, button := range h.buttons {
		buttonViews = append(buttonViews, h.zm.Mark(h.getButtonID(i), headerButtonStyle.Render(button.label)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	title := titleStyle.Render(h.title)
	spacingWidth := h.width - lipgloss.Width(title) - buttonsWidth
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) getButtonID(index int) string {
	return h.id + "button_" + string(rune('0'+index))
}
