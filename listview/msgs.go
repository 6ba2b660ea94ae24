package listview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/sortlist/reorder"
)

// ReorderedMsg is emitted after a drag moved an item.
type ReorderedMsg struct {
	List string
	reorder.Reordered
}

// DeletedMsg is emitted after an item was removed through its delete zone.
type DeletedMsg struct {
	List string
	reorder.Deleted
}

func eventCmd(list string, e reorder.Event) tea.Cmd {
	switch e := e.(type) {
	case reorder.Reordered:
		return func() tea.Msg { return ReorderedMsg{List: list, Reordered: e} }
	case reorder.Deleted:
		return func() tea.Msg { return DeletedMsg{List: list, Deleted: e} }
	}
	return nil
}
