// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package slider

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
)

// DragState represents the current state of a drag operation
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// Hit reports which handle, if any, lies under a point.
type Hit func(p image.Point) (handle string, ok bool)

// DragHandler tracks one thumb drag at a time: press on a handle grabs it,
// motion reports the pointer position, release lets go.
type DragHandler struct {
	state    DragState
	handleID string // ID of the handle being dragged
}

// NewDragHandler creates a new drag handler
func NewDragHandler() *DragHandler {
	return &DragHandler{
		state: DragStateIdle,
	}
}

// HandleMouseEvent processes mouse events for drag operations. It reports
// whether the event was consumed, the handle concerned and the pointer X.
// A press while a drag is in progress is ignored.
func (d *DragHandler) HandleMouseEvent(msg tea.MouseMsg, hit Hit) (bool, string, int) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || d.state == DragStateDragging {
			return false, "", 0
		}
		if handleID, ok := hit(image.Pt(msg.X, msg.Y)); ok {
			d.startDrag(handleID)
			return true, handleID, msg.X
		}
	case tea.MouseActionMotion:
		if d.state == DragStateDragging {
			return true, d.handleID, msg.X
		}
	case tea.MouseActionRelease:
		if d.state == DragStateDragging {
			handleID := d.handleID
			d.stopDrag()
			return true, handleID, msg.X
		}
	}
	return false, "", 0
}

// Cancel drops the current drag, e.g. when focus is lost.
func (d *DragHandler) Cancel() (string, bool) {
	if d.state != DragStateDragging {
		return "", false
	}
	handleID := d.handleID
	d.stopDrag()
	return handleID, true
}

// IsDragging returns true if currently in a drag operation
func (d *DragHandler) IsDragging() bool {
	return d.state == DragStateDragging
}

// HandleID returns the ID of the handle currently being dragged
func (d *DragHandler) HandleID() string {
	return d.handleID
}

func (d *DragHandler) startDrag(handleID string) {
	d.state = DragStateDragging
	d.handleID = handleID
}

func (d *DragHandler) stopDrag() {
	d.state = DragStateIdle
	d.handleID = ""
}
