// SPDX-License-Identifier: MIT

package trace

import (
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/graphplay/graph"
)

// Recorder holds one trace split into unplayed steps and played history.
// It is not safe for concurrent use; the playback controller owns it.
type Recorder struct {
	id        uuid.UUID
	algorithm string
	version   uint64

	steps   []Op // front is next to play
	history []Op // back is most recently played
}

var _ Emitter = (*Recorder)(nil)

// NewRecorder returns a clean Recorder with a fresh run ID.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{id: uuid.New()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ID returns the run identifier.
func (r *Recorder) ID() string { return r.id.String() }

// Algorithm returns the algorithm label, if any.
func (r *Recorder) Algorithm() string { return r.algorithm }

// Version returns the graph version the trace belongs to.
func (r *Recorder) Version() uint64 { return r.version }

// Outline appends an outline op.
func (r *Recorder) Outline(a, b *graph.Vertex) {
	r.steps = append(r.steps, Outline(*a, *b))
}

// Mark appends a mark op carrying the full pair and edge.
func (r *Recorder) Mark(a, b *graph.Vertex, e *graph.Edge) {
	r.steps = append(r.steps, Mark(*a, *b, e.Spec()))
}

// Clear appends a clear op.
func (r *Recorder) Clear() {
	r.steps = append(r.steps, Clear())
}

// Append adds already-built ops to the end of steps.
func (r *Recorder) Append(ops ...Op) {
	r.steps = append(r.steps, ops...)
}

// Advance moves the next step into history and returns it.
// ok is false when no steps remain.
func (r *Recorder) Advance() (op Op, ok bool) {
	if len(r.steps) == 0 {
		return Op{}, false
	}
	op = r.steps[0]
	r.steps = r.steps[1:]
	r.history = append(r.history, op)

	return op, true
}

// Rewind moves the most recently played op back to the front of steps.
// ok is false when history is empty.
func (r *Recorder) Rewind() (op Op, ok bool) {
	n := len(r.history)
	if n == 0 {
		return Op{}, false
	}
	op = r.history[n-1]
	r.history = r.history[:n-1]
	r.steps = slices.Insert(r.steps, 0, op)

	return op, true
}

// Steps returns a copy of the unplayed ops.
func (r *Recorder) Steps() []Op { return slices.Clone(r.steps) }

// History returns a copy of the played ops, oldest first.
func (r *Recorder) History() []Op { return slices.Clone(r.history) }

// Len returns the total trace length.
func (r *Recorder) Len() int { return len(r.steps) + len(r.history) }

// Played returns the number of ops in history.
func (r *Recorder) Played() int { return len(r.history) }

// Remaining returns the number of ops in steps.
func (r *Recorder) Remaining() int { return len(r.steps) }

// Clean reports whether no run has been recorded.
func (r *Recorder) Clean() bool { return len(r.steps) == 0 && len(r.history) == 0 }

// Exhausted reports whether a recorded trace has been fully played.
func (r *Recorder) Exhausted() bool { return len(r.steps) == 0 && len(r.history) > 0 }
