// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected snapshot.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrRootNotFound indicates that the requested Prim root is not in the snapshot.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrUnknownMethod indicates Compute was asked for an unsupported method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is the spanning forest found by either algorithm.
//
// Spanning is true when the forest is a single tree covering every vertex.
type Result struct {
	Edges    []graph.EdgeSpec
	Total    float64
	Spanning bool
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. Empty means the first vertex.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot returns an Option that sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm named by the options.
func Compute(snap *graph.Snapshot, rec trace.Emitter, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(snap, rec)
	case MethodPrim:
		return Prim(snap, rec, opts...)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// validate runs the checks shared by both algorithms.
func validate(snap *graph.Snapshot, rec trace.Emitter) error {
	if rec == nil {
		return trace.ErrNilRecorder
	}
	if err := snap.Validate(); err != nil {
		return err
	}
	if snap.Directed {
		return ErrInvalidGraph
	}

	return nil
}
