package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *graph.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	snap    *graph.Snapshot
	rec     trace.Emitter
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on snap starting from the source vertex
// and narrates it to rec:
//
//   - Outline(u, u) when u is dequeued and visited,
//   - Outline(u, v) for every edge examined out of u,
//   - Mark(u, v, e) when that edge discovers v.
//
// Weights are ignored. Undirected snapshots follow edges both ways.
// Returns trace.ErrNilRecorder, graph.ErrNilSnapshot or
// graph.ErrMalformedEdge for invalid input, ErrStartVertexNotFound,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or a
// wrapped OnVisit error. An empty snapshot yields an empty result.
func BFS(snap *graph.Snapshot, rec trace.Emitter, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rec == nil {
		return nil, trace.ErrNilRecorder
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	start := snap.First()
	if o.Source != "" {
		var ok bool
		if start, ok = snap.Vertex(o.Source); !ok {
			return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, o.Source)
		}
	}

	n := snap.Len()
	w := &walker{
		snap:    snap,
		rec:     rec,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if start == nil {
		return w.res, nil
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent edge and adds it
// to the queue.
func (w *walker) enqueue(v *graph.Vertex, d int, via *graph.Edge) {
	w.visited[v.ID] = true
	w.res.Depth[v.ID] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
	if via != nil {
		w.res.Parent[v.ID] = via.Other(v.ID).ID
		w.res.Tree = append(w.res.Tree, via.ID)
	}
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order, outlines it and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v.ID)
	w.rec.Outline(item.v, item.v)
	if err := w.opts.OnVisit(item.v.ID, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.v.ID, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, outlines every
// remaining edge and enqueues each unseen neighbor. Self-loops are skipped.
func (w *walker) enqueueNeighbors(item queueItem) {
	u := item.v
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.snap.Incident(u.ID) {
		nbr := e.Other(u.ID)
		if nbr == u || !w.opts.FilterNeighbor(u.ID, nbr.ID) {
			continue
		}
		w.rec.Outline(u, nbr)
		if !w.visited[nbr.ID] {
			w.rec.Mark(u, nbr, e)
			w.enqueue(nbr, nextDepth, e)
		}
	}
}
