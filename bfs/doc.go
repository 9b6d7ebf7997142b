// Package bfs provides a traced breadth-first search over a graph.Snapshot,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Tree: IDs of the discovering edges
//   - Narrates every decision to a trace.Emitter so playback can show the
//     frontier growing one layer at a time.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Trace
//
//	Outline(u, u)   u dequeued
//	Outline(u, v)   edge u→v examined
//	Mark(u, v, e)   v discovered through e
//
// Determinism
//
//	Neighbors are examined in snapshot edge order, so the visit sequence and
//	the trace are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	rec := trace.NewRecorder()
//	res, err := bfs.BFS(snap, rec, bfs.WithSource("v1"), bfs.WithMaxDepth(3))
//
// Errors
//
//   - trace.ErrNilRecorder    if rec is nil.
//   - graph.ErrNilSnapshot    if snap is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
