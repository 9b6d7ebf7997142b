// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: live graph catalog: vertex/edge lifecycle, layout-owned kinematics,
//       user selection and mutation notifications.
// Determinism:
//   - Vertices() and Edges() enumerate in creation order.
//   - IDs are monotonic ("v"/"e" + decimal) and never reused.
// Concurrency:
//   - One RWMutex guards every catalog; listeners run after unlock.

package graph

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
)

const (
	vertexIDPrefix = 'v'
	edgeIDPrefix   = 'e'
)

// Store is the live, mutable graph.
type Store struct {
	mu sync.RWMutex

	directed      bool
	defaultWeight float64

	nextVertex uint64
	nextEdge   uint64
	version    uint64

	vertices    map[string]*Vertex
	vertexOrder []string
	edges       map[string]*EdgeSpec
	edgeOrder   []string

	selected string

	nextListener int
	listeners    map[int]func(Mutation)
	listenOrder  []int
}

// NewStore creates an empty undirected Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		defaultWeight: 1,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*EdgeSpec),
		listeners:     make(map[int]func(Mutation)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DefaultWeight returns the weight used for edges created by Click.
func (s *Store) DefaultWeight() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.defaultWeight
}

// Directed reports whether snapshots of the Store are directed.
func (s *Store) Directed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.directed
}

// Version returns the structural version. It increases on every vertex or
// edge mutation and never on position updates.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Subscribe registers fn for structural mutation notifications and returns
// a function that removes it. The returned function is idempotent.
func (s *Store) Subscribe(fn func(Mutation)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenOrder = append(s.listenOrder, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			s.listenOrder = slices.DeleteFunc(s.listenOrder, func(x int) bool { return x == id })
		})
	}
}

// AddVertex creates a vertex at (x, y) and returns its generated ID.
// Complexity: O(1) amortized.
func (s *Store) AddVertex(x, y float64) string {
	s.mu.Lock()
	var id string
	for {
		s.nextVertex++
		id = string(strconv.AppendUint([]byte{vertexIDPrefix}, s.nextVertex, 10))
		if _, taken := s.vertices[id]; !taken {
			break
		}
	}
	s.insertVertex(&Vertex{ID: id, X: x, Y: y})
	m := s.bump(Mutation{Kind: VertexAdded, VertexID: id})
	s.mu.Unlock()

	s.notify(m)

	return id
}

// AddVertexWithID inserts v under its own ID, used when loading graph files.
// Errors: ErrEmptyVertexID, ErrDuplicateVertex.
func (s *Store) AddVertexWithID(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	s.mu.Lock()
	if _, taken := s.vertices[v.ID]; taken {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateVertex, v.ID)
	}
	c := v.clone()
	s.insertVertex(&c)
	m := s.bump(Mutation{Kind: VertexAdded, VertexID: v.ID})
	s.mu.Unlock()

	s.notify(m)

	return nil
}

// RemoveVertex deletes a vertex and every edge incident to it.
// Subscribers see one EdgeRemoved per cascaded edge, then VertexRemoved.
func (s *Store) RemoveVertex(id string) error {
	s.mu.Lock()
	if _, ok := s.vertices[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	var events []Mutation
	for _, eid := range slices.Clone(s.edgeOrder) {
		e := s.edges[eid]
		if e.Source == id || e.Target == id {
			s.deleteEdge(eid)
			events = append(events, s.bump(Mutation{Kind: EdgeRemoved, EdgeID: eid}))
		}
	}
	delete(s.vertices, id)
	s.vertexOrder = slices.DeleteFunc(s.vertexOrder, func(x string) bool { return x == id })
	if s.selected == id {
		s.selected = ""
	}
	events = append(events, s.bump(Mutation{Kind: VertexRemoved, VertexID: id}))
	s.mu.Unlock()

	s.notify(events...)

	return nil
}

// AddEdge connects source and target and returns the new edge ID.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is missing.
//   - ErrLoopNotAllowed if source == target.
//   - ErrNegativeWeight if weight < 0.
func (s *Store) AddEdge(source, target string, weight float64) (string, error) {
	if weight < 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, source, target, weight)
	}
	if source == target {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, source)
	}
	s.mu.Lock()
	if _, ok := s.vertices[source]; !ok {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, source)
	}
	if _, ok := s.vertices[target]; !ok {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, target)
	}
	s.nextEdge++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, s.nextEdge, 10))
	s.edges[eid] = &EdgeSpec{ID: eid, Source: source, Target: target, Weight: weight}
	s.edgeOrder = append(s.edgeOrder, eid)
	m := s.bump(Mutation{Kind: EdgeAdded, EdgeID: eid})
	s.mu.Unlock()

	s.notify(m)

	return eid, nil
}

// RemoveEdge deletes one edge by ID.
func (s *Store) RemoveEdge(eid string) error {
	s.mu.Lock()
	if _, ok := s.edges[eid]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, eid)
	}
	s.deleteEdge(eid)
	m := s.bump(Mutation{Kind: EdgeRemoved, EdgeID: eid})
	s.mu.Unlock()

	s.notify(m)

	return nil
}

// Clear empties the Store. ID counters keep running so IDs are never reused.
func (s *Store) Clear() {
	s.mu.Lock()
	s.vertices = make(map[string]*Vertex)
	s.vertexOrder = nil
	s.edges = make(map[string]*EdgeSpec)
	s.edgeOrder = nil
	s.selected = ""
	m := s.bump(Mutation{Kind: Cleared})
	s.mu.Unlock()

	s.notify(m)
}

// SetPosition moves a vertex. Reserved for the layout collaborator.
func (s *Store) SetPosition(id string, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	v.X, v.Y = x, y

	return nil
}

// SetVelocity updates a vertex velocity. Reserved for the layout collaborator.
func (s *Store) SetVelocity(id string, vx, vy float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	v.VX, v.VY = vx, vy

	return nil
}

// Pin fixes a vertex at (fx, fy); Unpin releases it.
func (s *Store) Pin(id string, fx, fy float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	v.FX, v.FY = &fx, &fy

	return nil
}

// Unpin releases a pinned vertex.
func (s *Store) Unpin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	v.FX, v.FY = nil, nil

	return nil
}

// Vertex returns a copy of one vertex.
func (s *Store) Vertex(id string) (Vertex, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return v.clone(), true
}

// Vertices returns copies of all vertices in creation order.
func (s *Store) Vertices() []Vertex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Vertex, 0, len(s.vertexOrder))
	for _, id := range s.vertexOrder {
		out = append(out, s.vertices[id].clone())
	}

	return out
}

// Edges returns copies of all edges in creation order.
func (s *Store) Edges() []EdgeSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EdgeSpec, 0, len(s.edgeOrder))
	for _, id := range s.edgeOrder {
		out = append(out, *s.edges[id])
	}

	return out
}

// VertexCount returns the number of vertices.
func (s *Store) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vertices)
}

// EdgeCount returns the number of edges.
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// Snapshot freezes the current structure into a Snapshot. Vertices are
// copied, so later edits and layout ticks never reach the snapshot.
// Complexity: O(V+E).
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Directed: s.directed,
		Version:  s.version,
		Vertices: make([]*Vertex, 0, len(s.vertexOrder)),
		Edges:    make([]*Edge, 0, len(s.edgeOrder)),
	}
	byID := make(map[string]*Vertex, len(s.vertexOrder))
	for _, id := range s.vertexOrder {
		c := s.vertices[id].clone()
		snap.Vertices = append(snap.Vertices, &c)
		byID[id] = &c
	}
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		snap.Edges = append(snap.Edges, &Edge{
			ID:     e.ID,
			Source: byID[e.Source],
			Target: byID[e.Target],
			Weight: e.Weight,
		})
	}
	snap.index = byID

	return snap
}

// Select marks id as the user-selected vertex. An empty id deselects.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.vertices[id]; !ok {
			return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
		}
	}
	s.selected = id

	return nil
}

// Selected returns the user-selected vertex IDs (zero or one element).
func (s *Store) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == "" {
		return nil
	}

	return []string{s.selected}
}

// Click implements two-click edge creation. The first click selects id;
// clicking the selected vertex again deselects it; clicking a different
// vertex connects the two with the default weight and clears the selection.
// created reports whether an edge was added.
func (s *Store) Click(id string) (eid string, created bool, err error) {
	s.mu.Lock()
	if _, ok := s.vertices[id]; !ok {
		s.mu.Unlock()
		return "", false, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	prev := s.selected
	switch prev {
	case "":
		s.selected = id
		s.mu.Unlock()
		return "", false, nil
	case id:
		s.selected = ""
		s.mu.Unlock()
		return "", false, nil
	}
	s.selected = ""
	w := s.defaultWeight
	s.mu.Unlock()

	eid, err = s.AddEdge(prev, id, w)
	if err != nil {
		return "", false, err
	}

	return eid, true, nil
}

// insertVertex registers v. Caller holds s.mu.
func (s *Store) insertVertex(v *Vertex) {
	s.vertices[v.ID] = v
	s.vertexOrder = append(s.vertexOrder, v.ID)
}

// deleteEdge unregisters eid. Caller holds s.mu.
func (s *Store) deleteEdge(eid string) {
	delete(s.edges, eid)
	s.edgeOrder = slices.DeleteFunc(s.edgeOrder, func(x string) bool { return x == eid })
}

// bump increments the version and stamps m. Caller holds s.mu.
func (s *Store) bump(m Mutation) Mutation {
	s.version++
	m.Version = s.version

	return m
}

// notify delivers events to a copy of the listener list. Must be called
// without holding s.mu so listeners may call back into the Store.
func (s *Store) notify(events ...Mutation) {
	s.mu.RLock()
	fns := make([]func(Mutation), 0, len(s.listenOrder))
	for _, id := range s.listenOrder {
		fns = append(fns, s.listeners[id])
	}
	s.mu.RUnlock()

	for _, m := range events {
		for _, fn := range fns {
			fn(m)
		}
	}
}
