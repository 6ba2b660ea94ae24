// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type footer struct {
	width int
}

func (f *footer) View(status string, items int, mouse bool) string {
	mouseInfo := "Mouse: disabled"
	if mouse {
		mouseInfo = "Mouse: enabled"
	}
	info := fmt.Sprintf("%s | Items: %d | %s | Enter=copy | Ctrl+E=mouse | Ctrl+C=quit",
		status, items, mouseInfo)
	return footerStyle.Width(f.width).Render(debugStyle.Render(info))
}
