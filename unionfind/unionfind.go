// SPDX-License-Identifier: MIT

package unionfind

import "fmt"

// DisjointSet partitions elements identified by K into disjoint sets.
// The zero value is not usable; construct with New.
// A DisjointSet is not safe for concurrent use.
type DisjointSet[K comparable] struct {
	nodes map[K]*Node[K]
	order []K // insertion order, keeps Components deterministic
}

// New returns an empty DisjointSet.
func New[K comparable]() *DisjointSet[K] {
	return &DisjointSet[K]{nodes: make(map[K]*Node[K])}
}

// Add creates a singleton set for k and returns its node.
// If k is already present the existing node is returned unchanged.
// Complexity: O(1).
func (d *DisjointSet[K]) Add(k K) *Node[K] {
	if n, ok := d.nodes[k]; ok {
		return n
	}
	n := &Node[K]{Key: k, size: 1}
	n.parent = n
	d.nodes[k] = n
	d.order = append(d.order, k)

	return n
}

// Len returns the number of elements added so far.
func (d *DisjointSet[K]) Len() int { return len(d.nodes) }

// Find returns the representative node of the set containing k.
//
// Steps:
//  1. Look up k; ErrNotFound if absent.
//  2. Walk parent links to the self-parenting root.
//  3. Second pass: point every node on the walked path directly at the root.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[K]) Find(k K) (*Node[K], error) {
	n, ok := d.nodes[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, k)
	}

	root := n
	for root.parent != root {
		root = root.parent
	}
	// Path compression. Only non-root parents change.
	for n != root {
		next := n.parent
		n.parent = root
		n = next
	}

	return root, nil
}

// Union merges the sets containing a and b.
//
// The smaller set's root is attached under the larger one and sizes are
// summed. On a tie a's root remains the parent. If a and b already share a
// root nothing changes.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[K]) Union(a, b K) error {
	ra, err := d.Find(a)
	if err != nil {
		return err
	}
	rb, err := d.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	if ra.size >= rb.size {
		rb.parent = ra
		ra.size += rb.size
	} else {
		ra.parent = rb
		rb.size += ra.size
	}

	return nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet[K]) Connected(a, b K) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Components returns every set as a slice of keys.
// Members keep insertion order; sets are ordered by their first member.
// Complexity: O(n·α(n)).
func (d *DisjointSet[K]) Components() [][]K {
	index := make(map[*Node[K]]int)
	var out [][]K
	for _, k := range d.order {
		root, _ := d.Find(k) // k is known, Find cannot fail
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], k)
	}

	return out
}
