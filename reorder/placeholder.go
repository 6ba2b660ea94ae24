package reorder

// Placeholder marks the slot a dragged item would land in if released now.
type Placeholder struct {
	// Height is pinned to the dragged item's height for the whole drag.
	Height int
	index  int
	active bool
}

// Index is the flow position of the placeholder.
func (p *Placeholder) Index() int {
	return p.index
}

// placeholders owns the single Placeholder of a list. It is created on
// first use and reused by every later drag.
type placeholders struct {
	ph *Placeholder
}

func (m *placeholders) acquire(height, index int) *Placeholder {
	if m.ph == nil {
		m.ph = &Placeholder{}
	}
	m.ph.Height = height
	m.ph.index = index
	m.ph.active = true
	return m.ph
}

func (m *placeholders) active() bool {
	return m.ph != nil && m.ph.active
}

// moveBefore puts the placeholder in front of flow[i]. It reports whether
// the slot changed.
func (m *placeholders) moveBefore(i int) bool {
	return m.moveTo(i)
}

// moveAfter puts the placeholder behind flow[i].
func (m *placeholders) moveAfter(i int) bool {
	return m.moveTo(i + 1)
}

func (m *placeholders) moveTo(slot int) bool {
	if m.ph.index == slot {
		return false
	}
	m.ph.index = slot
	return true
}

// resolve swaps dragged into the placeholder's slot and retires the
// placeholder. It returns the new flow and the slot the item landed in.
func (m *placeholders) resolve(flow []Item, dragged Item) ([]Item, int) {
	at := m.ph.index
	if at < 0 {
		at = 0
	}
	if at > len(flow) {
		at = len(flow)
	}
	m.ph.active = false
	out := make([]Item, 0, len(flow)+1)
	out = append(out, flow[:at]...)
	out = append(out, dragged)
	out = append(out, flow[at:]...)
	return out, at
}
