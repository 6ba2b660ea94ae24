package reorder

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

// Item is one renderable row. The list orders items by ID and never looks
// at anything else.
type Item struct {
	ID    string
	Title string
}

// CancelPolicy decides where an item lands when a drag ends without a
// release.
type CancelPolicy int

const (
	// CancelCommit resolves at the last placeholder slot.
	CancelCommit CancelPolicy = iota
	// CancelRevert puts the item back where it was grabbed.
	CancelRevert
)

// ParseCancelPolicy maps "commit" and "revert" to a CancelPolicy.
func ParseCancelPolicy(s string) (CancelPolicy, error) {
	switch s {
	case "", "commit":
		return CancelCommit, nil
	case "revert":
		return CancelRevert, nil
	}
	return CancelCommit, fmt.Errorf("reorder: unknown cancel policy %q", s)
}

// Slot is one entry of the rendered flow: either an item or the
// placeholder.
type Slot struct {
	Item        Item
	Placeholder bool
	// Height is set for the placeholder only.
	Height int
}

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger used for drag and lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(l *List) {
		if log != nil {
			l.log = log
		}
	}
}

// WithDocument makes the list listen on d instead of a private Document.
func WithDocument(d *Document) Option {
	return func(l *List) {
		if d != nil {
			l.doc = d
		}
	}
}

// WithCancelPolicy sets how a cancelled drag resolves.
func WithCancelPolicy(p CancelPolicy) Option {
	return func(l *List) {
		l.cancel = p
	}
}

type observer struct {
	id uint64
	fn func(Event)
}

// List is an ordered sequence of items that can be reordered by dragging
// and shrunk through delete zones. Consumers observe it through Subscribe.
type List struct {
	flow         []Item
	tree         Tree
	doc          *Document
	placeholders placeholders
	ctrl         controller
	cancel       CancelPolicy
	log          *zap.Logger

	observers []observer
	nextObs   uint64

	mounted   bool
	unmounted bool
}

// New builds a list over items, rendered through tree.
func New(items []Item, tree Tree, opts ...Option) (*List, error) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("new list: %w: %q", ErrDuplicateItem, it.ID)
		}
		seen[it.ID] = struct{}{}
	}

	l := &List{
		flow: append([]Item(nil), items...),
		tree: tree,
		doc:  NewDocument(),
		log:  zap.NewNop(),
	}
	l.ctrl.list = l
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Mount makes the list accept pointer events.
func (l *List) Mount() error {
	if l.unmounted {
		return ErrUnmounted
	}
	if l.mounted {
		return ErrAlreadyMounted
	}
	l.mounted = true
	l.log.Debug("list mounted", zap.Int("items", len(l.flow)))
	return nil
}

// Unmount aborts any drag, releases the document registration and detaches
// the rendered subtree. The list rejects every later pointer event.
func (l *List) Unmount() error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.ctrl.state == StateDragging {
		l.ctrl.resolve(false)
	}
	l.tree.Detach()
	l.mounted = false
	l.unmounted = true
	l.log.Debug("list unmounted")
	return nil
}

// PointerDown hands a press to the drag controller. Move, up and cancel
// events reach an active drag through the Document.
func (l *List) PointerDown(ev PointerEvent) (bool, error) {
	return l.ctrl.pointerDown(ev)
}

// Document returns the document the list's drags listen on.
func (l *List) Document() *Document {
	return l.doc
}

// Subscribe registers fn for Reordered and Deleted events. The returned
// function removes it.
func (l *List) Subscribe(fn func(Event)) (cancel func()) {
	l.nextObs++
	id := l.nextObs
	l.observers = append(l.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range l.observers {
			if o.id == id {
				l.observers = append(l.observers[:i:i], l.observers[i+1:]...)
				return
			}
		}
	}
}

// Items returns the committed order. During a drag the dragged item is
// reported at the slot it was grabbed from.
func (l *List) Items() []Item {
	out := append([]Item(nil), l.flow...)
	if s := l.ctrl.session; s != nil {
		out = append(out[:s.from], append([]Item{s.item}, out[s.from:]...)...)
	}
	return out
}

// Index returns the committed position of id.
func (l *List) Index(id string) (int, error) {
	for i, it := range l.Items() {
		if it.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// Len returns the number of items, including a dragged one.
func (l *List) Len() int {
	n := len(l.flow)
	if l.ctrl.session != nil {
		n++
	}
	return n
}

// Slots returns the flow as drawn: the in-flow items, plus the placeholder
// while a drag is active. The dragged item itself floats and is not part
// of the flow.
func (l *List) Slots() []Slot {
	out := make([]Slot, 0, len(l.flow)+1)
	for _, it := range l.flow {
		out = append(out, Slot{Item: it})
	}
	if l.placeholders.active() {
		ph := l.placeholders.ph
		at := ph.index
		out = append(out[:at], append([]Slot{{Placeholder: true, Height: ph.Height}}, out[at:]...)...)
	}
	return out
}

// State returns the drag controller state.
func (l *List) State() State {
	return l.ctrl.state
}

// Session returns the active drag session, or nil when idle.
func (l *List) Session() *Session {
	return l.ctrl.session
}

// Dragging reports whether a drag session is active.
func (l *List) Dragging() bool {
	return l.ctrl.state == StateDragging
}

// Floating returns the dragged item and its top-left corner.
func (l *List) Floating() (Item, image.Point, bool) {
	s := l.ctrl.session
	if s == nil {
		return Item{}, image.Point{}, false
	}
	return s.item, s.Origin(), true
}

// Placeholder returns the placeholder, or nil before the first drag.
func (l *List) Placeholder() *Placeholder {
	return l.placeholders.ph
}

func (l *List) usable() error {
	if l.unmounted {
		return ErrUnmounted
	}
	if !l.mounted {
		return ErrNotMounted
	}
	return nil
}

func (l *List) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range l.flow {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) remove(i int) {
	item := l.flow[i]
	l.flow = append(l.flow[:i:i], l.flow[i+1:]...)
	l.tree.Remove(item.ID)
	l.log.Debug("item deleted", zap.String("item", item.ID), zap.Int("index", i))
	l.emit(Deleted{Item: item, Index: i})
}

func (l *List) emit(e Event) {
	obs := append([]observer(nil), l.observers...)
	for _, o := range obs {
		o.fn(e)
	}
}
