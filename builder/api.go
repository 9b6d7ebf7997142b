// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - Build applies constructors to an existing Store; BuildStore creates one.
//   - Options resolve into an immutable builderConfig (no global state).
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphplay/graph"
)

// Constructor applies a deterministic mutation to s using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(s *graph.Store, cfg builderConfig) error

// Build resolves bopts and applies cons to s in order. Any constructor error
// is wrapped with "Build: %w" and returned immediately; vertices already added
// stay in s.
func Build(s *graph.Store, bopts []BuilderOption, cons ...Constructor) error {
	if s == nil {
		return fmt.Errorf("Build: nil store: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// BuildStore creates a Store with sopts and runs Build on it.
func BuildStore(sopts []graph.StoreOption, bopts []BuilderOption, cons ...Constructor) (*graph.Store, error) {
	s := graph.NewStore(sopts...)
	if err := Build(s, bopts, cons...); err != nil {
		return nil, err
	}

	return s, nil
}

// addVertex inserts vertex idx at (x, y). Without an ID scheme the Store
// assigns the ID.
func addVertex(s *graph.Store, cfg builderConfig, method string, idx int, x, y float64) (string, error) {
	if cfg.idFn == nil {
		return s.AddVertex(x, y), nil
	}
	id := cfg.idFn(idx)
	if err := s.AddVertexWithID(graph.Vertex{ID: id, X: x, Y: y}); err != nil {
		return "", fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return id, nil
}

// addEdge connects u and v with the next weight from cfg.weightFn.
func addEdge(s *graph.Store, cfg builderConfig, method, u, v string) error {
	if _, err := s.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}

// ringPos spreads n points clockwise on a circle centred on the canvas,
// starting at twelve o'clock.
func ringPos(cfg builderConfig, i, n int) (x, y float64) {
	r := 0.4 * math.Min(cfg.width, cfg.height)
	a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return cfg.width/2 + r*math.Cos(a), cfg.height/2 + r*math.Sin(a)
}

// ring adds n vertices on a circle and returns their IDs.
func ring(s *graph.Store, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		x, y := ringPos(cfg, i, n)
		id, err := addVertex(s, cfg, method, i, x, y)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}
