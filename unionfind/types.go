// SPDX-License-Identifier: MIT

package unionfind

import "errors"

// ErrNotFound indicates that Find or Union referenced an element that was
// never added to the set.
var ErrNotFound = errors.New("unionfind: element not found")

// Node is one element of a DisjointSet.
//
// Key is the element identity. parent links towards the representative
// root; size is only meaningful on roots.
type Node[K comparable] struct {
	// Key is the element identity supplied to Add.
	Key K

	parent *Node[K]
	size   int
}

// Parent returns the node this node is attached to. Roots return themselves.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// Size returns the number of elements in the set rooted at n.
// The value is only meaningful when n is a root.
func (n *Node[K]) Size() int { return n.size }

// IsRoot reports whether n is the representative of its set.
func (n *Node[K]) IsRoot() bool { return n.parent == n }
