// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that an empty vertex ID was supplied.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrDuplicateVertex indicates that an explicit vertex ID is already taken.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNegativeWeight indicates a negative weight was given to the Store.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMalformedEdge indicates a snapshot edge whose endpoints are missing
	// or do not resolve to vertices of the same snapshot.
	ErrMalformedEdge = errors.New("graph: malformed edge")

	// ErrNilSnapshot indicates a nil *Snapshot was handed to an algorithm.
	ErrNilSnapshot = errors.New("graph: snapshot is nil")
)

// Vertex is one node of the graph.
//
// X/Y and VX/VY are owned by the layout collaborator. FX/FY, when non-nil,
// pin the vertex at a fixed position.
type Vertex struct {
	ID string `yaml:"id" json:"id"`

	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
	VX float64 `yaml:"-" json:"vx"`
	VY float64 `yaml:"-" json:"vy"`

	FX *float64 `yaml:"fx,omitempty" json:"fx,omitempty"`
	FY *float64 `yaml:"fy,omitempty" json:"fy,omitempty"`
}

// Pinned reports whether the vertex has a fixed position.
func (v Vertex) Pinned() bool { return v.FX != nil && v.FY != nil }

// clone returns a copy that does not share pin pointers with v.
func (v Vertex) clone() Vertex {
	c := v
	if v.FX != nil {
		fx := *v.FX
		c.FX = &fx
	}
	if v.FY != nil {
		fy := *v.FY
		c.FY = &fy
	}

	return c
}

// EdgeSpec is the Store-side representation of an edge: endpoints by ID.
type EdgeSpec struct {
	ID     string  `yaml:"id,omitempty" json:"id"`
	Source string  `yaml:"source" json:"source"`
	Target string  `yaml:"target" json:"target"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Edge is the Snapshot-side representation of an edge: endpoints resolved to
// vertices of the owning Snapshot.
type Edge struct {
	ID     string
	Source *Vertex
	Target *Vertex
	Weight float64
}

// Other returns the endpoint opposite to id, or nil if id is not an endpoint.
func (e *Edge) Other(id string) *Vertex {
	switch {
	case e.Source != nil && e.Source.ID == id:
		return e.Target
	case e.Target != nil && e.Target.ID == id:
		return e.Source
	default:
		return nil
	}
}

// Spec converts e back into its ID-based form.
func (e *Edge) Spec() EdgeSpec {
	s := EdgeSpec{ID: e.ID, Weight: e.Weight}
	if e.Source != nil {
		s.Source = e.Source.ID
	}
	if e.Target != nil {
		s.Target = e.Target.ID
	}

	return s
}

// MutationKind classifies a structural change to a Store.
type MutationKind int

const (
	VertexAdded MutationKind = iota + 1
	VertexRemoved
	EdgeAdded
	EdgeRemoved
	Cleared
)

// String implements fmt.Stringer.
func (k MutationKind) String() string {
	switch k {
	case VertexAdded:
		return "vertex_added"
	case VertexRemoved:
		return "vertex_removed"
	case EdgeAdded:
		return "edge_added"
	case EdgeRemoved:
		return "edge_removed"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Mutation describes one structural change. Version is the Store version
// after the change was applied.
type Mutation struct {
	Kind     MutationKind
	VertexID string
	EdgeID   string
	Version  uint64
}

// StoreOption configures a Store before creation.
type StoreOption func(*Store)

// WithDirected makes snapshots of the Store directed (source→target only).
// Stores are undirected by default.
func WithDirected() StoreOption {
	return func(s *Store) { s.directed = true }
}

// WithDefaultWeight sets the weight Click uses for edges it creates.
// Panics on a negative weight.
func WithDefaultWeight(w float64) StoreOption {
	if w < 0 {
		panic("graph: WithDefaultWeight(negative)")
	}
	return func(s *Store) { s.defaultWeight = w }
}
