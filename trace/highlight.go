// SPDX-License-Identifier: MIT

package trace

import "slices"

// View is a point-in-time copy of highlight state, ready for a renderer.
type View struct {
	Outlined    []string `json:"outlined"`
	Marked      []string `json:"marked"`
	MarkedEdges []string `json:"marked_edges"`
}

// Highlight folds ops into the outlined and marked vertex sets.
//
//   - Outline replaces the outlined set with the op's pair.
//   - Mark adds the pair to the marked set (de-duplicated by vertex ID) and
//     the edge to the marked edge set.
//   - Clear empties everything.
//
// Set contents are reported in first-insertion order.
type Highlight struct {
	outlined []string
	marked   []string
	edges    []string

	markedIdx map[string]struct{}
	edgeIdx   map[string]struct{}
}

// NewHighlight returns an empty Highlight.
func NewHighlight() *Highlight {
	return &Highlight{
		markedIdx: make(map[string]struct{}),
		edgeIdx:   make(map[string]struct{}),
	}
}

// Replay applies ops in order to a fresh Highlight.
func Replay(ops []Op) *Highlight {
	h := NewHighlight()
	for _, op := range ops {
		h.Apply(op)
	}

	return h
}

// Apply folds one op into the state.
func (h *Highlight) Apply(op Op) {
	switch op.Kind {
	case KindOutline:
		ids := op.IDs()
		h.outlined = h.outlined[:0]
		h.outlined = append(h.outlined, ids[0])
		if ids[1] != ids[0] {
			h.outlined = append(h.outlined, ids[1])
		}
	case KindMark:
		for _, id := range op.IDs() {
			if _, seen := h.markedIdx[id]; !seen {
				h.markedIdx[id] = struct{}{}
				h.marked = append(h.marked, id)
			}
		}
		if id := op.Edge.ID; id != "" {
			if _, seen := h.edgeIdx[id]; !seen {
				h.edgeIdx[id] = struct{}{}
				h.edges = append(h.edges, id)
			}
		}
	case KindClear:
		h.Reset()
	}
}

// Rebuild replaces the state with the fold of history. Stepping back uses
// it to apply the exact inverse of the last op.
// Complexity: O(len(history)).
func (h *Highlight) Rebuild(history []Op) {
	h.Reset()
	for _, op := range history {
		h.Apply(op)
	}
}

// Reset empties every set.
func (h *Highlight) Reset() {
	h.outlined = nil
	h.marked = nil
	h.edges = nil
	clear(h.markedIdx)
	clear(h.edgeIdx)
}

// Empty reports whether nothing is highlighted.
func (h *Highlight) Empty() bool {
	return len(h.outlined) == 0 && len(h.marked) == 0 && len(h.edges) == 0
}

// IsOutlined reports whether id belongs to the current outline pair.
func (h *Highlight) IsOutlined(id string) bool { return slices.Contains(h.outlined, id) }

// IsMarked reports whether id is in the persistent set.
func (h *Highlight) IsMarked(id string) bool {
	_, ok := h.markedIdx[id]
	return ok
}

// IsEdgeMarked reports whether the edge with the given ID is marked.
func (h *Highlight) IsEdgeMarked(id string) bool {
	_, ok := h.edgeIdx[id]
	return ok
}

// Outlined returns the outlined vertex IDs.
func (h *Highlight) Outlined() []string { return slices.Clone(h.outlined) }

// Marked returns the marked vertex IDs.
func (h *Highlight) Marked() []string { return slices.Clone(h.marked) }

// MarkedEdges returns the marked edge IDs.
func (h *Highlight) MarkedEdges() []string { return slices.Clone(h.edges) }

// View copies the current state.
func (h *Highlight) View() View {
	return View{
		Outlined:    h.Outlined(),
		Marked:      h.Marked(),
		MarkedEdges: h.MarkedEdges(),
	}
}
