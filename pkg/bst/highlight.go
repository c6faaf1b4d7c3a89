package bst

// State is the presentation state of a node outline or a child edge.
type State int

const (
	Default State = iota
	Active
	Found
	Deleting
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Found:
		return "found"
	case Deleting:
		return "deleting"
	}
	return "default"
}

// Mark is the presentation state of one node.
type Mark struct {
	Outline State
	Left    State // edge to the left child
	Right   State // edge to the right child

	// Opacity of a node that is being deleted, from 1 down to 0.
	Opacity float64
}

// Highlight maps nodes to their presentation state. Nodes without an entry
// are drawn in their default state. The zero value is ready to use.
type Highlight struct {
	marks map[*Node]Mark
}

// Get returns the mark of n.
func (h *Highlight) Get(n *Node) Mark {
	if m, ok := h.marks[n]; ok {
		return m
	}
	return Mark{Opacity: 1}
}

func (h *Highlight) update(n *Node, fn func(*Mark)) {
	if h.marks == nil {
		h.marks = make(map[*Node]Mark)
	}
	m := h.Get(n)
	fn(&m)
	if m == (Mark{Opacity: 1}) {
		delete(h.marks, n)
		return
	}
	h.marks[n] = m
}

func (h *Highlight) outline(n *Node, s State) { h.update(n, func(m *Mark) { m.Outline = s }) }
func (h *Highlight) left(n *Node, s State)    { h.update(n, func(m *Mark) { m.Left = s }) }
func (h *Highlight) right(n *Node, s State)   { h.update(n, func(m *Mark) { m.Right = s }) }

func (h *Highlight) fade(n *Node, opacity float64) {
	h.update(n, func(m *Mark) {
		m.Outline = Deleting
		m.Opacity = opacity
	})
}

func (h *Highlight) clear(n *Node) { delete(h.marks, n) }

// Len returns the number of nodes with a non-default mark.
func (h *Highlight) Len() int { return len(h.marks) }

// Reset clears every mark.
func (h *Highlight) Reset() { clear(h.marks) }
