// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// random.go - RandomSparse(n, p), an Erdős–Rényi G(n, p) graph.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1, cfg.rng != nil (checked in that order).
//   - Vertices are scattered uniformly over the canvas with a 10% margin.
//   - Pairs are visited (i, j), i < j, row-major; one Bernoulli(p) draw per pair.
//   - Directed stores also visit (j, i).
//
// Determinism: fixed seed ⇒ identical positions, edges and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/graph"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
	canvasMargin       = 0.1
)

// RandomSparse builds a random graph with edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *graph.Store, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		mx, my := cfg.width*canvasMargin, cfg.height*canvasMargin
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			x := mx + cfg.rng.Float64()*(cfg.width-2*mx)
			y := my + cfg.rng.Float64()*(cfg.height-2*my)
			id, err := addVertex(s, cfg, methodRandomSparse, i, x, y)
			if err != nil {
				return err
			}
			ids[i] = id
		}

		directed := s.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err := addEdge(s, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
				if directed && cfg.rng.Float64() < p {
					if err := addEdge(s, cfg, methodRandomSparse, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
