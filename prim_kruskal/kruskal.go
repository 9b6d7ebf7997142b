package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
	"github.com/katalvlaran/graphplay/unionfind"
)

// Kruskal computes the minimum spanning forest of snap and narrates it to rec.
//
// Steps:
//  1. Validate emitter and snapshot; reject directed snapshots.
//  2. Seed a disjoint set with every vertex ID.
//  3. Copy the edges and sort them by ascending weight with sort.SliceStable,
//     so equal weights keep snapshot order and the trace is deterministic.
//  4. For each edge: Outline(u,v); if Find(u) != Find(v) then Union and Mark.
//
// Unlike a plain MST routine the loop never breaks early once |V|-1 edges
// are accepted: every remaining edge is still outlined, because the viewer
// expects to see each candidate considered.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(snap *graph.Snapshot, rec trace.Emitter) (Result, error) {
	if err := validate(snap, rec); err != nil {
		return Result{}, err
	}

	sets := unionfind.New[string]()
	for _, v := range snap.Vertices {
		sets.Add(v.ID)
	}

	edges := make([]*graph.Edge, len(snap.Edges))
	copy(edges, snap.Edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	var res Result
	for _, e := range edges {
		u, v := e.Source, e.Target
		rec.Outline(u, v)

		// Validate guaranteed both endpoints were added, so lookups cannot fail.
		joined, err := sets.Connected(u.ID, v.ID)
		if err != nil {
			return Result{}, err
		}
		if joined {
			continue
		}
		if err = sets.Union(u.ID, v.ID); err != nil {
			return Result{}, err
		}
		res.Edges = append(res.Edges, e.Spec())
		res.Total += e.Weight
		rec.Mark(u, v, e)
	}
	res.Spanning = snap.Len() <= 1 || len(res.Edges) == snap.Len()-1

	return res, nil
}
