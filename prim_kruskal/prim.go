// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using a lazy min‐heap of candidate edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// Prim computes the minimum spanning forest of snap by growing outwards
// from a root vertex, narrating every popped candidate to rec.
//
// Error Conditions:
//   - graph.ErrNilSnapshot / graph.ErrMalformedEdge : invalid snapshot.
//   - trace.ErrNilRecorder                          : rec is nil.
//   - ErrInvalidGraph                               : snap.Directed.
//   - ErrRootNotFound                               : WithRoot names an unknown vertex.
//
// Steps:
//  1. Validate; resolve the root (WithRoot or the first vertex).
//  2. Mark root visited and push its incident edges.
//  3. While the heap is not empty:
//     a. Pop the lightest candidate (from→to) and Outline(from, to).
//     b. If to is already visited, skip (the edge would close a cycle).
//     c. Otherwise Mark(from, to, e), mark to visited, push its edges.
//  4. When the heap drains with vertices unvisited, restart step 2 at the
//     next unvisited vertex in snapshot order (forest mode).
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(snap *graph.Snapshot, rec trace.Emitter, opts ...Option) (Result, error) {
	if err := validate(snap, rec); err != nil {
		return Result{}, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var res Result
	if snap.Len() == 0 {
		res.Spanning = true

		return res, nil
	}

	root := snap.First()
	if cfg.Root != "" {
		var ok bool
		if root, ok = snap.Vertex(cfg.Root); !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrRootNotFound, cfg.Root)
		}
	}

	visited := make(map[string]bool, snap.Len())
	pq := &edgePQ{}
	var seq int

	// push enqueues every edge leaving v toward an unvisited vertex.
	push := func(v *graph.Vertex) {
		for _, e := range snap.Incident(v.ID) {
			to := e.Other(v.ID)
			if visited[to.ID] {
				continue
			}
			heap.Push(pq, candidate{edge: e, from: v, to: to, seq: seq})
			seq++
		}
	}

	// grow runs one tree of the forest from start until the heap is empty.
	grow := func(start *graph.Vertex) {
		visited[start.ID] = true
		push(start)
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			rec.Outline(c.from, c.to)
			if visited[c.to.ID] {
				continue
			}
			visited[c.to.ID] = true
			res.Edges = append(res.Edges, c.edge.Spec())
			res.Total += c.edge.Weight
			rec.Mark(c.from, c.to, c.edge)
			push(c.to)
		}
	}

	grow(root)
	trees := 1
	for _, v := range snap.Vertices {
		if !visited[v.ID] {
			grow(v)
			trees++
		}
	}
	res.Spanning = trees == 1

	return res, nil
}

// candidate is a heap entry: edge reached from an already visited vertex.
type candidate struct {
	edge     *graph.Edge
	from, to *graph.Vertex
	seq      int
}

// edgePQ implements heap.Interface for a min‐heap of candidates, ordered by
// weight and then by push order so equal weights pop deterministically.
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should pop before j.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
