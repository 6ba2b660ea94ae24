package reorder

import "image"

// Phase is the stage of a pointer interaction.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	// PhaseCancel ends a drag without a release, e.g. lost capture.
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Zone is an interaction affordance of an item.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneGrab
	ZoneDelete
)

// Target identifies what a pointer-down landed on.
type Target struct {
	Item string
	Zone Zone
}

// PointerEvent is a single pointer sample.
type PointerEvent struct {
	Phase  Phase
	Pos    image.Point
	Target Target
}
