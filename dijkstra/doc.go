// Package dijkstra provides a heap-based implementation of Dijkstra's
// shortest-path algorithm that narrates its decisions to a trace.Emitter.
//
// Algorithm outline:
//
//  1. dist[source] = 0, every other vertex +∞; push source.
//  2. Pop the closest unsettled vertex u; Outline(u, u) to show it settled.
//  3. For each edge u→v: Outline(u, v); if dist[u]+w < dist[v] then update
//     dist and prev and Mark(u, v, e).
//  4. Repeat until the heap is empty.
//
// The emitted trace is a valid serialization of settle → examine → relax
// decisions, so replaying it frame by frame shows the frontier expanding.
//
// The source defaults to the first vertex of the snapshot; override it with
// Source(id). Undirected snapshots relax both directions of each edge.
// Negative weights are rejected before any op is emitted; use the
// bellman_ford package for those graphs.
//
// Example:
//
//	rec := trace.NewRecorder()
//	res, err := dijkstra.Dijkstra(store.Snapshot(), rec, dijkstra.Source("v1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist["v4"], res.Path("v4"))
package dijkstra
