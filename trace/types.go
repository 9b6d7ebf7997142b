// SPDX-License-Identifier: MIT

package trace

import (
	"errors"

	"github.com/katalvlaran/graphplay/graph"
)

// ErrNilRecorder indicates an algorithm was started without an Emitter.
var ErrNilRecorder = errors.New("trace: recorder is nil")

// Kind tags the variant of an Op.
type Kind int

const (
	// KindOutline replaces the transient outline pair.
	KindOutline Kind = iota + 1

	// KindMark adds a pair (and its edge) to the persistent set.
	KindMark

	// KindClear discards transient and persistent state.
	KindClear
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindOutline:
		return "outline"
	case KindMark:
		return "mark"
	case KindClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Op is one visualization event.
//
// Vertices is set for Outline and Mark; Edge only for Mark. Vertices are
// value copies so an Op stays meaningful after the snapshot is dropped.
type Op struct {
	Kind     Kind
	Vertices [2]graph.Vertex
	Edge     graph.EdgeSpec
}

// Outline builds an outline op.
func Outline(a, b graph.Vertex) Op {
	return Op{Kind: KindOutline, Vertices: [2]graph.Vertex{a, b}}
}

// Mark builds a mark op.
func Mark(a, b graph.Vertex, e graph.EdgeSpec) Op {
	return Op{Kind: KindMark, Vertices: [2]graph.Vertex{a, b}, Edge: e}
}

// Clear builds a clear op.
func Clear() Op {
	return Op{Kind: KindClear}
}

// IDs returns the vertex IDs of the op's pair.
func (o Op) IDs() [2]string {
	return [2]string{o.Vertices[0].ID, o.Vertices[1].ID}
}

// Emitter is the surface algorithms call at their decision points.
type Emitter interface {
	Outline(a, b *graph.Vertex)
	Mark(a, b *graph.Vertex, e *graph.Edge)
	Clear()
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithAlgorithm labels the recorder with the algorithm that fills it.
func WithAlgorithm(name string) Option {
	return func(r *Recorder) { r.algorithm = name }
}

// WithVersion records the graph version the trace was produced against.
func WithVersion(v uint64) Option {
	return func(r *Recorder) { r.version = v }
}
