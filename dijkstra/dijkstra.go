// Package dijkstra implements Dijkstra's shortest-path algorithm on graph snapshots.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights
//     and fail fast, before anything is emitted.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries. Equal distances pop in push order.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// Dijkstra computes shortest distances from the source vertex to all other
// vertices of snap and narrates its decisions to rec:
//
//   - Outline(u, u) when u is settled,
//   - Outline(u, v) for every edge examined out of u,
//   - Mark(u, v, e) when that edge improves dist[v].
//
// Preconditions and validation (in order):
//  1. rec must be non-nil (trace.ErrNilRecorder).
//  2. snap must be valid (graph.ErrNilSnapshot, graph.ErrMalformedEdge).
//  3. Source, if given, must exist (ErrVertexNotFound).
//  4. No edge can have negative weight (ErrNegativeWeight).
//
// An empty snapshot yields an empty Result and no ops.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(snap *graph.Snapshot, rec trace.Emitter, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if rec == nil {
		return Result{}, trace.ErrNilRecorder
	}
	if err := snap.Validate(); err != nil {
		return Result{}, err
	}

	// 3) Resolve the source vertex
	src := snap.First()
	if cfg.Source != "" {
		var ok bool
		if src, ok = snap.Vertex(cfg.Source); !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
		}
	}
	if src == nil {
		return Result{Dist: map[string]float64{}, Prev: map[string]string{}}, nil
	}

	// 4) Pre-scan all edges to detect negative weights.
	for _, e := range snap.Edges {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %s %s→%s weight=%g",
				ErrNegativeWeight, e.ID, e.Source.ID, e.Target.ID, e.Weight)
		}
	}

	// 5) Run
	r := &runner{
		snap:    snap,
		rec:     rec,
		options: cfg,
		dist:    make(map[string]float64, snap.Len()),
		prev:    make(map[string]string, snap.Len()),
		visited: make(map[string]bool, snap.Len()),
		pq:      make(nodePQ, 0, snap.Len()),
	}
	r.init(src)
	r.process()

	return Result{Source: src.ID, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *graph.Snapshot
	rec     trace.Emitter
	options Options
	dist    map[string]float64 // vertex ID → current best distance from source
	prev    map[string]string  // vertex ID → predecessor on the shortest path
	visited map[string]bool    // settled vertices
	pq      nodePQ
	seq     int // push counter for deterministic tie-breaks
}

// init sets every distance to +∞, the source to 0, and pushes the source.
func (r *runner) init(src *graph.Vertex) {
	for _, v := range r.snap.Vertices {
		r.dist[v.ID] = math.Inf(1)
		r.prev[v.ID] = ""
	}
	r.dist[src.ID] = 0
	heap.Init(&r.pq)
	r.push(src, 0)
}

func (r *runner) push(v *graph.Vertex, d float64) {
	heap.Push(&r.pq, &nodeItem{v: v, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing edges, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.v

		// Stale heap entry.
		if r.visited[u.ID] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u.ID] = true
		r.rec.Outline(u, u)
		r.relax(u)
	}
}

// relax examines each edge out of u and improves neighbor distances.
// Assumes dist[u] is final.
func (r *runner) relax(u *graph.Vertex) {
	for _, e := range r.snap.Incident(u.ID) {
		v := e.Other(u.ID)
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		r.rec.Outline(u, v)

		newDist := r.dist[u.ID] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v.ID] {
			continue
		}
		r.dist[v.ID] = newDist
		r.prev[v.ID] = u.ID
		r.rec.Mark(u, v, e)
		r.push(v, newDist)
	}
}

// nodeItem is a vertex with a tentative distance from the source.
type nodeItem struct {
	v    *graph.Vertex
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push sequence.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
