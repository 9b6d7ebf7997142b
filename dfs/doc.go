// Package dfs implements a traced depth-first search (single-source and
// forest) over a graph.Snapshot.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking and narrates each decision to a trace.Emitter:
//     Outline(u, u) on discovery, Outline(u, v) per examined edge, and
//     Mark(u, v, e) for every tree edge. Replayed frame by frame the marks
//     grow one branch at a time, in contrast to the layered growth of bfs.
//   - Supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and full-graph
//     (forest) traversal.
//
// Determinism:
//
//	Neighbors are examined in snapshot edge order and forest roots in
//	snapshot vertex order, so Order and the trace are reproducible.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - trace.ErrNilRecorder    rec is nil
//   - graph.ErrNilSnapshot    snap is nil
//   - ErrStartVertexNotFound  source vertex ID not in snapshot
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
