// Package bellman_ford computes single-source shortest paths on graphs that
// may carry negative edge weights, narrating every relaxation attempt to a
// trace.Emitter.
//
// Algorithm outline:
//
//	dist[source] = 0, others +∞
//	repeat |V| times:
//	    for each edge (u, v, w) in snapshot order:
//	        Outline(u, v)
//	        if dist[u] + w < dist[v]:
//	            dist[v] = dist[u] + w; prev[v] = u; Mark(u, v, e)
//
// Undirected snapshots attempt both directions of every edge (source→target
// first); directed snapshots only source→target.
//
// Negative cycles: the first |V|-1 rounds are enough to settle every
// shortest path, so any successful relaxation in round |V| proves a
// negative cycle reachable from the source. BellmanFord then returns
// ErrNegativeCycle; ops emitted up to that point remain in the emitter.
//
// Complexity: O(V·E) time, O(V) memory.
package bellman_ford
