// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// topology.go - deterministic topologies.
//
// Emission order is part of the contract: vertices in index order, edges in
// the order documented per constructor, so equal weights keep a stable
// Kruskal tie-break.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/graph"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridSide      = 1

	centerID = "Center"
)

// Cycle builds C_n with edges i → (i+1)%n.
func Cycle(n int) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := ring(s, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(s, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds P_n with edges i → i+1, laid out left to right.
func Path(n int) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		step := cfg.width / float64(n+1)
		prev := ""
		for i := 0; i < n; i++ {
			id, err := addVertex(s, cfg, methodPath, i, step*float64(i+1), cfg.height/2)
			if err != nil {
				return err
			}
			if prev != "" {
				if err = addEdge(s, cfg, methodPath, prev, id); err != nil {
					return err
				}
			}
			prev = id
		}

		return nil
	}
}

// addCenter inserts the hub used by Star and Wheel at the canvas centre.
func addCenter(s *graph.Store, cfg builderConfig, method string) (string, error) {
	x, y := cfg.width/2, cfg.height/2
	if cfg.idFn == nil {
		return s.AddVertex(x, y), nil
	}
	if err := s.AddVertexWithID(graph.Vertex{ID: centerID, X: x, Y: y}); err != nil {
		return "", fmt.Errorf("%s: AddVertex(%s): %w", method, centerID, err)
	}

	return centerID, nil
}

// Star builds a hub plus n-1 leaves, edges Center → leaf i.
func Star(n int) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center, err := addCenter(s, cfg, methodStar)
		if err != nil {
			return err
		}
		leaves, err := ring(s, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(s, cfg, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: rim edges first (as Cycle(n-1)), then spokes.
func Wheel(n int) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		center, err := addCenter(s, cfg, methodWheel)
		if err != nil {
			return err
		}
		rim, err := ring(s, cfg, methodWheel, n-1)
		if err != nil {
			return err
		}
		for i := range rim {
			if err = addEdge(s, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = addEdge(s, cfg, methodWheel, center, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with edges (i, j) for i < j in lexicographic order.
func Complete(n int) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := ring(s, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(s, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice in row-major order. For each cell the
// right neighbour edge is emitted before the down neighbour edge.
func Grid(rows, cols int) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		dx := cfg.width / float64(cols+1)
		dy := cfg.height / float64(rows+1)
		ids := make([]string, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				id, err := addVertex(s, cfg, methodGrid, idx, dx*float64(c+1), dy*float64(r+1))
				if err != nil {
					return err
				}
				ids[idx] = id
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				if c+1 < cols {
					if err := addEdge(s, cfg, methodGrid, ids[idx], ids[idx+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(s, cfg, methodGrid, ids[idx], ids[idx+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
