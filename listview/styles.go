// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package listview

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	danger    = lipgloss.AdaptiveColor{Light: "#E0565B", Dark: "#F25D94"}

	listHeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle)

	grabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}).
			PaddingRight(1)

	deleteStyle = lipgloss.NewStyle().
			Foreground(danger).
			PaddingLeft(1)

	itemStyle = lipgloss.NewStyle()

	matchStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(subtle)

	floatingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
			Background(highlight)
)

const (
	grabGlyph        = "⠿"
	deleteGlyph      = "✕"
	placeholderGlyph = "┄"
)
