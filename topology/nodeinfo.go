// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package topology

// NodeInfo is a node that matches
// a leaf set.
type NodeInfo struct {
	// ID of the matched node
	Node int

	// Number of terminals of the node
	// (or its complement)
	// not present in the leaf set.
	Mismatch int

	// Downwards is true if the leaf set is matched
	// by the subtree of the node,
	// and false if it is matched
	// by its complement.
	Downwards bool

	// ID of another node that matches exactly
	// the same leaf set,
	// or -1 if there is none.
	Alternative int
}

// HasAlternative returns true if the node info
// has an alternative node.
func (ni NodeInfo) HasAlternative() bool {
	return ni.Alternative >= 0
}
