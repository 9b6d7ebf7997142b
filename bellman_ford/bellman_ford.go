package bellman_ford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// BellmanFord computes shortest distances from the source (first vertex or
// WithSource) and emits Outline before every relaxation attempt and Mark on
// every success.
//
// Errors: trace.ErrNilRecorder, graph.ErrNilSnapshot, graph.ErrMalformedEdge,
// ErrVertexNotFound, ErrNegativeCycle.
func BellmanFord(snap *graph.Snapshot, rec trace.Emitter, opts ...Option) (Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if rec == nil {
		return Result{}, trace.ErrNilRecorder
	}
	if err := snap.Validate(); err != nil {
		return Result{}, err
	}

	src := snap.First()
	if cfg.Source != "" {
		var ok bool
		if src, ok = snap.Vertex(cfg.Source); !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
		}
	}
	res := Result{
		Dist: make(map[string]float64, snap.Len()),
		Prev: make(map[string]string, snap.Len()),
	}
	if src == nil {
		return res, nil
	}
	res.Source = src.ID
	for _, v := range snap.Vertices {
		res.Dist[v.ID] = math.Inf(1)
		res.Prev[v.ID] = ""
	}
	res.Dist[src.ID] = 0

	// relax attempts u→v along e and reports whether dist[v] improved.
	relax := func(u, v *graph.Vertex, e *graph.Edge) bool {
		rec.Outline(u, v)
		if nd := res.Dist[u.ID] + e.Weight; nd < res.Dist[v.ID] {
			res.Dist[v.ID] = nd
			res.Prev[v.ID] = u.ID
			rec.Mark(u, v, e)

			return true
		}

		return false
	}

	rounds := snap.Len()
	for round := 1; round <= rounds; round++ {
		changed := false
		for _, e := range snap.Edges {
			if relax(e.Source, e.Target, e) {
				changed = true
			}
			if !snap.Directed && e.Source != e.Target && relax(e.Target, e.Source, e) {
				changed = true
			}
		}
		if changed && round == rounds {
			return Result{}, ErrNegativeCycle
		}
	}

	return res, nil
}
