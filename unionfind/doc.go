// SPDX-License-Identifier: MIT
//
// Package unionfind provides a generic disjoint-set (union-find) structure
// used to track connectivity classes of vertices, most notably by Kruskal's
// minimum spanning tree algorithm in prim_kruskal.
//
// What & Why
//
//   - Every element starts in its own singleton set (Add).
//   - Union merges two sets; Find returns the representative (root) node.
//   - Two elements are connected iff their Find results are identical.
//
// Contract
//
//   - Roots are self-parenting: Find(x).Parent() == Find(x).
//   - Root.Size() equals the number of elements whose transitive root it is.
//   - Union attaches the smaller set's root under the larger one; on equal
//     sizes the first argument's root stays the parent.
//   - Find/Union on an unknown element fail with ErrNotFound. Elements are
//     never created implicitly.
//   - Add on a known element is a no-op returning the existing node.
//
// Find applies iterative path compression. Compression only shortens
// parent chains of non-root nodes, so none of the guarantees above change.
//
// Complexity: Add O(1), Find/Union O(α(n)) amortized, Components O(n).
package unionfind
