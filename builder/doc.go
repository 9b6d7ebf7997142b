// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// Package builder populates a graph.Store with deterministic demo topologies
// so traces can be recorded without drawing a graph by hand.
//
// Design:
//   - A Constructor mutates a Store using a resolved builderConfig.
//   - Build / BuildStore apply constructors in order; the first error wins.
//   - Functional BuilderOptions choose ID scheme, weights, RNG and the canvas
//     used for initial vertex placement.
//   - Option constructors panic on meaningless input; constructors never do.
//
// Topologies:
//
//	Cycle(n)            n ≥ 3, ring placement
//	Path(n)             n ≥ 2, horizontal line
//	Star(n)             n ≥ 2, "Center" plus n-1 leaves on a ring
//	Wheel(n)            n ≥ 4, Cycle(n-1) plus spokes from "Center"
//	Complete(n)         n ≥ 1, K_n on a ring
//	Grid(rows, cols)    rows, cols ≥ 1, 4-neighborhood lattice
//	RandomSparse(n, p)  Erdős–Rényi G(n, p); requires WithSeed or WithRand
//
// Parse turns textual specs such as "grid:3x4" or "random:12:0.3" (used by
// the CLI and the config file) into Constructors.
//
// Determinism: the same options, seed and constructor order always yield the
// same vertices, edges, weights and positions.
package builder
