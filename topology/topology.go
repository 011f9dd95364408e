// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package topology implements the comparison of nodes
// between phylogenetic trees
// that share the same terminals.
//
// A Calculator assigns an index to each terminal
// of a reference tree.
// Any tree with the same terminals can be decorated
// with the leaf set of each of its nodes,
// and then searched for the node that best matches
// a given leaf set,
// for example the leaf set of a node in the reference tree.
//
// As in an unrooted tree a subtree and its complement
// define the same split,
// a node can match a leaf set either by its own subtree
// or by the complement of it.
package topology

import (
	"github.com/js-arias/treetopo/leafset"
)

// A Tree is a rooted tree with ordered children.
// Nodes are identified by an ID.
//
// A *timetree.Tree is a Tree.
type Tree interface {
	// Root returns the ID of the root node.
	Root() int

	// Children returns the IDs of the children of a node.
	Children(id int) []int

	// IsTerm returns true if the node is a terminal.
	IsTerm(id int) bool

	// Taxon returns the taxon name of a node.
	Taxon(id int) string
}

// A KeyFunc returns the identifier
// of a terminal node.
type KeyFunc func(t Tree, id int) string

// TaxonKey is the default KeyFunc,
// it uses the taxon name of the node.
func TaxonKey(t Tree, id int) string {
	return t.Taxon(id)
}

// Options are the options used to build a calculator.
type Options struct {
	// Key is the function used to retrieve
	// terminal identifiers.
	// If nil, TaxonKey will be used.
	Key KeyFunc

	// Policy is the normalization policy
	// for terminal identifiers.
	Policy Policy

	// If Rooted is true,
	// leaf sets will carry an extra bit
	// so a split will be matched only
	// by the subtree that contains it,
	// and never by a complement.
	Rooted bool
}

// A Calculator stores the index of the terminals
// of a reference tree.
//
// A Calculator is not modified after its creation,
// so it can be shared.
type Calculator struct {
	index  map[string]int
	terms  []string
	key    KeyFunc
	policy Policy
	rooted bool
}

func newCalculator(opts Options) *Calculator {
	key := opts.Key
	if key == nil {
		key = TaxonKey
	}
	return &Calculator{
		index:  make(map[string]int),
		key:    key,
		policy: opts.Policy,
		rooted: opts.Rooted,
	}
}

// New creates a new calculator
// using the terminals of a reference tree.
// Terminals are indexed in the order they are found
// in a pre-order traversal of the tree.
func New(ref Tree, opts Options) *Calculator {
	c := newCalculator(opts)
	walkTerms(ref, ref.Root(), func(id int) {
		c.add(c.key(ref, id))
	})
	return c
}

// FromTerms creates a new calculator
// from a list of terminal names.
func FromTerms(names []string, opts Options) *Calculator {
	c := newCalculator(opts)
	for _, n := range names {
		c.add(n)
	}
	return c
}

func (c *Calculator) add(raw string) {
	k := c.policy.Normalize(raw)
	if _, ok := c.index[k]; ok {
		return
	}
	c.index[k] = len(c.terms)
	c.terms = append(c.terms, k)
}

// Index returns the index of a terminal identifier.
// If the identifier is not defined
// in the calculator it will return false.
func (c *Calculator) Index(raw string) (int, bool) {
	i, ok := c.index[c.policy.Normalize(raw)]
	return i, ok
}

// Len returns the number of terminals
// in the calculator.
func (c *Calculator) Len() int {
	return len(c.terms)
}

// SetLen returns the size of the leaf sets
// used by the calculator.
// In a rooted calculator it is Len()+1.
func (c *Calculator) SetLen() int {
	if c.rooted {
		return len(c.terms) + 1
	}
	return len(c.terms)
}

// Rooted returns true if the calculator
// uses rooted comparisons.
func (c *Calculator) Rooted() bool {
	return c.rooted
}

// Terms returns the normalized terminal identifiers
// in index order.
func (c *Calculator) Terms() []string {
	terms := make([]string, len(c.terms))
	copy(terms, c.terms)
	return terms
}

// TermSet returns a leaf set
// with the indicated terminals.
// Names not defined in the calculator
// are returned as unknown.
func (c *Calculator) TermSet(names []string) (ls *leafset.Set, unknown []string) {
	ls = leafset.New(c.SetLen())
	for _, n := range names {
		i, ok := c.Index(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		ls.SetTo(i, true)
	}
	return ls, unknown
}

// CompareTerms compares the terminals of a tree
// with the terminals of the calculator.
// It returns nil if both sets of terminals are equal,
// otherwise it returns a *TermsError.
func (c *Calculator) CompareTerms(t Tree) error {
	seen := make(map[string]bool)
	var unknown []string
	walkTerms(t, t.Root(), func(id int) {
		k := c.policy.Normalize(c.key(t, id))
		if seen[k] {
			return
		}
		seen[k] = true
		if _, ok := c.index[k]; !ok {
			unknown = append(unknown, k)
		}
	})

	var missing []string
	for _, k := range c.terms {
		if !seen[k] {
			missing = append(missing, k)
		}
	}
	if len(unknown) == 0 && len(missing) == 0 {
		return nil
	}
	return &TermsError{
		Unknown: unknown,
		Missing: missing,
	}
}

func walkTerms(t Tree, id int, fn func(id int)) {
	if t.IsTerm(id) {
		fn(id)
		return
	}
	for _, c := range t.Children(id) {
		walkTerms(t, c, fn)
	}
}
