// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"sync"
)

// Snapshot is a frozen vertex/edge set handed to one algorithm run.
//
// Every Edge.Source and Edge.Target must point at an element of Vertices.
// Snapshots produced by Store.Snapshot and NewSnapshot satisfy this by
// construction; hand-built snapshots are checked by Validate.
type Snapshot struct {
	// Directed restricts traversal to Source→Target.
	Directed bool

	// Version is the Store version the snapshot was taken at (0 if built
	// directly).
	Version uint64

	Vertices []*Vertex
	Edges    []*Edge

	once  sync.Once
	index map[string]*Vertex
	adj   map[string][]*Edge
}

// NewSnapshot resolves ID-based edges against vertices and returns a
// Snapshot. Vertices are copied.
//
// Errors: ErrEmptyVertexID, ErrDuplicateVertex, ErrMalformedEdge (an edge
// endpoint names no vertex).
func NewSnapshot(vertices []Vertex, edges []EdgeSpec, directed bool) (*Snapshot, error) {
	snap := &Snapshot{
		Directed: directed,
		Vertices: make([]*Vertex, 0, len(vertices)),
		Edges:    make([]*Edge, 0, len(edges)),
	}
	byID := make(map[string]*Vertex, len(vertices))
	for _, v := range vertices {
		if v.ID == "" {
			return nil, ErrEmptyVertexID
		}
		if _, dup := byID[v.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVertex, v.ID)
		}
		c := v.clone()
		byID[v.ID] = &c
		snap.Vertices = append(snap.Vertices, &c)
	}
	for i, e := range edges {
		src, ok := byID[e.Source]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d source %q unresolved", ErrMalformedEdge, i, e.Source)
		}
		dst, ok := byID[e.Target]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d target %q unresolved", ErrMalformedEdge, i, e.Target)
		}
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("%c%d", edgeIDPrefix, i+1)
		}
		snap.Edges = append(snap.Edges, &Edge{ID: id, Source: src, Target: dst, Weight: e.Weight})
	}
	snap.index = byID

	return snap, nil
}

// Validate checks that every edge endpoint is a non-nil vertex belonging to
// this snapshot. It is the precondition every algorithm checks first.
// Complexity: O(V+E).
func (s *Snapshot) Validate() error {
	if s == nil {
		return ErrNilSnapshot
	}
	index := make(map[string]*Vertex, len(s.Vertices))
	for i, v := range s.Vertices {
		if v == nil {
			return fmt.Errorf("%w: vertex %d is nil", ErrMalformedEdge, i)
		}
		index[v.ID] = v
	}
	for i, e := range s.Edges {
		if e == nil {
			return fmt.Errorf("%w: edge %d is nil", ErrMalformedEdge, i)
		}
		if e.Source == nil || e.Target == nil {
			return fmt.Errorf("%w: edge %s has an unresolved endpoint", ErrMalformedEdge, e.ID)
		}
		if index[e.Source.ID] != e.Source || index[e.Target.ID] != e.Target {
			return fmt.Errorf("%w: edge %s references a vertex outside the snapshot", ErrMalformedEdge, e.ID)
		}
	}

	return nil
}

// Len returns the number of vertices.
func (s *Snapshot) Len() int { return len(s.Vertices) }

// First returns the first vertex in snapshot order, the implicit source of
// the shortest-path algorithms. Nil for an empty snapshot.
func (s *Snapshot) First() *Vertex {
	if len(s.Vertices) == 0 {
		return nil
	}

	return s.Vertices[0]
}

// Vertex looks up a vertex by ID.
func (s *Snapshot) Vertex(id string) (*Vertex, bool) {
	s.build()
	v, ok := s.index[id]

	return v, ok
}

// Incident returns the edges traversable out of id, in snapshot edge order.
// Undirected snapshots list an edge under both endpoints.
func (s *Snapshot) Incident(id string) []*Edge {
	s.build()

	return s.adj[id]
}

// build lazily computes the ID index and adjacency. Assumes Validate passed.
func (s *Snapshot) build() {
	s.once.Do(func() {
		if s.index == nil {
			s.index = make(map[string]*Vertex, len(s.Vertices))
			for _, v := range s.Vertices {
				s.index[v.ID] = v
			}
		}
		s.adj = make(map[string][]*Edge, len(s.Vertices))
		for _, e := range s.Edges {
			s.adj[e.Source.ID] = append(s.adj[e.Source.ID], e)
			if !s.Directed && e.Source != e.Target {
				s.adj[e.Target.ID] = append(s.adj[e.Target.ID], e)
			}
		}
	})
}
