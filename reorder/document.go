package reorder

import "sync"

// Listener receives pointer events dispatched on a Document.
type Listener func(PointerEvent)

type registration struct {
	id uint64
	fn Listener
}

// Document is the document-level pointer event fan-out. Drags register on
// it rather than on their item, since the pointer may leave the item while
// it is held. A Document is not safe for concurrent use; all events are
// expected on the UI goroutine.
type Document struct {
	next uint64
	regs []registration
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// Listen registers fn and returns the function that releases it. Calling
// release more than once is a no-op.
func (d *Document) Listen(fn Listener) (release func()) {
	d.next++
	id := d.next
	d.regs = append(d.regs, registration{id: id, fn: fn})
	return func() {
		for i, r := range d.regs {
			if r.id == id {
				d.regs = append(d.regs[:i:i], d.regs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to every current listener in registration order.
// Listeners may release themselves while being called.
func (d *Document) Dispatch(ev PointerEvent) {
	regs := make([]registration, len(d.regs))
	copy(regs, d.regs)
	for _, r := range regs {
		r.fn(ev)
	}
}

// Len returns the number of active registrations.
func (d *Document) Len() int {
	return len(d.regs)
}

var (
	globalMu  sync.Mutex
	globalDoc *Document
)

// InitDocument creates the process-wide Document shared by lists that are
// built with WithDocument(DefaultDocument()). It must be called once
// before DefaultDocument and paired with CloseDocument at shutdown.
func InitDocument() *Document {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalDoc == nil {
		globalDoc = NewDocument()
	}
	return globalDoc
}

// DefaultDocument returns the process-wide Document, or nil if
// InitDocument has not been called.
func DefaultDocument() *Document {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalDoc
}

// CloseDocument discards the process-wide Document.
func CloseDocument() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalDoc = nil
}
