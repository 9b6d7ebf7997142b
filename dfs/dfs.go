package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	snap *graph.Snapshot
	rec  trace.Emitter
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on snap and narrates it to rec:
//
//   - Outline(u, u) when u is discovered,
//   - Outline(u, v) for every edge examined out of u,
//   - Mark(u, v, e) when that edge leads to an undiscovered v.
//
// If opts include WithFullTraversal, it covers all disconnected components;
// otherwise it explores only the tree rooted at the source (first vertex by
// default). Self-loops are ignored.
//
// Returns trace.ErrNilRecorder, graph.ErrNilSnapshot,
// graph.ErrMalformedEdge, ErrStartVertexNotFound, ctx.Err(), or a wrapped
// hook error. The partial result is returned alongside traversal errors.
func DFS(snap *graph.Snapshot, rec trace.Emitter, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if rec == nil {
		return nil, trace.ErrNilRecorder
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve the first root
	root := snap.First()
	if dopts.Source != "" {
		var ok bool
		if root, ok = snap.Vertex(dopts.Source); !ok {
			return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, dopts.Source)
		}
	}

	n := snap.Len()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	if root == nil {
		return res, nil
	}

	w := &dfsWalker{snap: snap, rec: rec, opts: dopts, res: res}

	// 4. Traverse: the requested tree first, then the rest of the forest
	if err := w.traverse(root, 0); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for _, v := range snap.Vertices {
			if !res.Visited[v.ID] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	}

	return res, nil
}

// traverse visits u at the given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker) traverse(u *graph.Vertex, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[u.ID] = true
	w.res.Depth[u.ID] = depth
	w.rec.Outline(u, u)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(u.ID); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", u.ID, err)
		}
	}

	// 4. Explore each neighbor unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range w.snap.Incident(u.ID) {
			v := e.Other(u.ID)
			if v == u {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v.ID) {
				w.res.SkippedNeighbors++
				continue
			}

			w.rec.Outline(u, v)
			if w.res.Visited[v.ID] {
				continue
			}
			w.rec.Mark(u, v, e)
			w.res.Parent[v.ID] = u.ID
			w.res.Tree = append(w.res.Tree, e.ID)
			if err := w.traverse(v, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(u.ID); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", u.ID, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, u.ID)

	return nil
}
