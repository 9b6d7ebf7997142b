// Package prim_kruskal computes minimum spanning trees over a graph.Snapshot
// while narrating every decision to a trace.Emitter.
//
// What & Why
//
//   - An MST of an undirected weighted graph is a subset of edges that
//     connects every vertex at minimum total weight. On a disconnected graph
//     both algorithms here return a minimum spanning forest instead of
//     failing, because a half-built forest is still worth animating.
//
// Algorithms Provided
//
//   - Kruskal(snap, rec)
//
//   - Strategy: stable-sort all edges by weight (ties keep snapshot order),
//     then walk them once. For each edge emit Outline(u, v); if u and v sit
//     in different unionfind classes, Union them and emit Mark(u, v, e).
//
//   - Trace shape: exactly one Outline per edge, one Mark per accepted edge,
//     always directly after that edge's Outline. |V|-1 marks when connected.
//
//   - Complexity: O(E log E + E·α(V)).
//
//   - Prim(snap, rec, opts...)
//
//   - Strategy: grow a tree from a root (first vertex unless WithRoot) with a
//     lazy min-heap of candidate edges. Each popped candidate is outlined;
//     it is marked when it reaches an unvisited vertex. When the heap runs
//     dry the walk restarts at the next unvisited vertex in snapshot order.
//
//   - Complexity: O(E log E).
//
// Error Conditions
//
//   - graph.ErrNilSnapshot, graph.ErrMalformedEdge: invalid snapshot.
//   - trace.ErrNilRecorder: nil emitter.
//   - ErrInvalidGraph: the snapshot is directed.
//   - ErrRootNotFound (Prim): WithRoot names a vertex outside the snapshot.
//   - ErrUnknownMethod (Compute): unsupported method name.
package prim_kruskal
