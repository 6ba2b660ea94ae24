package reorder

import (
	"image"

	"go.uber.org/zap"
)

// State represents the current state of a drag operation
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// controller drives the grab, track, relocate and commit lifecycle of a
// List. It holds at most one Session at a time.
type controller struct {
	list    *List
	state   State
	session *Session
	release func()
}

// pointerDown routes a press to the grab path or the delete path. It
// reports whether the press was consumed. Presses that cannot be traced to
// an item are ignored.
func (c *controller) pointerDown(ev PointerEvent) (bool, error) {
	l := c.list
	if err := l.usable(); err != nil {
		l.log.Warn("pointer-down rejected", zap.Error(err))
		return false, err
	}
	if ev.Phase != PhaseDown {
		return false, nil
	}
	if c.state == StateDragging {
		l.log.Debug("pointer-down during drag rejected",
			zap.String("dragging", c.session.item.ID),
			zap.String("target", ev.Target.Item))
		return false, ErrDragActive
	}

	i := l.indexOf(ev.Target.Item)
	if i < 0 {
		return false, nil
	}
	switch ev.Target.Zone {
	case ZoneGrab:
		return c.start(i, ev.Pos), nil
	case ZoneDelete:
		l.remove(i)
		return true, nil
	}
	return false, nil
}

func (c *controller) start(i int, p image.Point) bool {
	l := c.list
	item := l.flow[i]
	rect, ok := l.tree.Bounds(item.ID)
	if !ok {
		return false
	}

	c.session = newSession(item, i, rect, p)
	l.flow = append(l.flow[:i:i], l.flow[i+1:]...)
	l.placeholders.acquire(rect.Dy(), i)
	l.tree.Lift(item.ID, rect)
	c.release = l.doc.Listen(c.handle)
	c.state = StateDragging

	l.log.Debug("drag started",
		zap.String("item", item.ID),
		zap.Int("from", i),
		zap.Stringer("offset", c.session.offset))
	return true
}

// handle is the document-level listener held for the life of a session.
func (c *controller) handle(ev PointerEvent) {
	if c.state != StateDragging {
		return
	}
	switch ev.Phase {
	case PhaseMove:
		c.move(ev.Pos)
	case PhaseUp:
		c.commit(true)
	case PhaseCancel:
		c.commit(c.list.cancel == CancelCommit)
	}
}

func (c *controller) move(p image.Point) {
	l := c.list
	s := c.session
	s.track(p)
	l.tree.Float(s.item.ID, s.Origin())

	id, rect, ok := hitTest(l.tree, s.hitPoint(), s.item.ID)
	if !ok {
		return
	}
	j := l.indexOf(id)
	if j < 0 {
		return
	}

	mid := Before
	if l.placeholders.ph.index <= j {
		mid = After
	}
	var moved bool
	switch Place(p, rect, mid) {
	case Before:
		moved = l.placeholders.moveBefore(j)
	case After:
		moved = l.placeholders.moveAfter(j)
	}
	if moved {
		l.log.Debug("placeholder moved",
			zap.String("item", s.item.ID),
			zap.Int("slot", l.placeholders.ph.index))
	}
}

// commit resolves the placeholder and emits a Reordered event if the item
// landed somewhere new. With keep false the item returns to its origin.
func (c *controller) commit(keep bool) {
	ev, moved := c.resolve(keep)
	if moved {
		c.list.emit(ev)
	}
}

func (c *controller) resolve(keep bool) (Reordered, bool) {
	l := c.list
	s := c.session
	if !keep {
		l.placeholders.moveTo(s.from)
	}
	var to int
	l.flow, to = l.placeholders.resolve(l.flow, s.item)
	c.teardown()

	l.log.Debug("drag ended",
		zap.String("item", s.item.ID),
		zap.Int("from", s.from),
		zap.Int("to", to),
		zap.Bool("kept", keep))
	return Reordered{Item: s.item, From: s.from, To: to}, to != s.from
}

// teardown is the single exit path of a session: it releases the document
// registration and returns the controller to idle.
func (c *controller) teardown() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
	if c.session != nil {
		c.list.tree.Settle(c.session.item.ID)
	}
	c.session = nil
	c.state = StateIdle
}
