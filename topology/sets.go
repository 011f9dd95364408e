// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package topology

import (
	"github.com/js-arias/treetopo/leafset"
)

// Sets stores the leaf sets
// of the nodes of a tree.
//
// Sets are created by decorating a tree
// and are only valid for the tree topology
// at the moment of the decoration.
type Sets struct {
	c       *Calculator
	t       Tree
	root    int
	sets    map[int]*leafset.Set
	unknown []string
}

// Decorate calculates the leaf sets
// of all the nodes of a tree.
func (c *Calculator) Decorate(t Tree) *Sets {
	return c.DecorateFrom(t, t.Root())
}

// DecorateFrom calculates the leaf sets
// of the subtree of the indicated node.
func (c *Calculator) DecorateFrom(t Tree, id int) *Sets {
	s := &Sets{
		c:    c,
		t:    t,
		root: id,
		sets: make(map[int]*leafset.Set),
	}
	s.decorate(id)
	return s
}

func (s *Sets) decorate(id int) *leafset.Set {
	ls := leafset.New(s.c.SetLen())
	s.sets[id] = ls

	if s.t.IsTerm(id) {
		k := s.c.key(s.t, id)
		i, ok := s.c.Index(k)
		if !ok {
			s.unknown = append(s.unknown, k)
			return ls
		}
		ls.SetTo(i, true)
		return ls
	}

	for _, c := range s.t.Children(id) {
		ls.Union(s.decorate(c))
	}
	return ls
}

// Root returns the ID of the decorated subtree root.
func (s *Sets) Root() int {
	return s.root
}

// Set returns the leaf set of a node.
// If the node has no leaf set,
// an empty one will be created.
func (s *Sets) Set(id int) *leafset.Set {
	ls, ok := s.sets[id]
	if !ok {
		ls = leafset.New(s.c.SetLen())
		s.sets[id] = ls
	}
	return ls
}

// Unknown returns the terminal identifiers
// found during the decoration
// that are not defined in the calculator.
func (s *Sets) Unknown() []string {
	return s.unknown
}

// Find returns the node of the decorated tree
// that best matches the target leaf set.
// See FindFrom.
func (s *Sets) Find(target *leafset.Set) (NodeInfo, bool) {
	return s.FindFrom(s.root, target)
}

// FindFrom searches the subtree of a node
// for the node that best matches the target leaf set.
//
// A node matches the target if the target is a subset
// of the node leaf set,
// or if the complement of the target is a subset
// of the node leaf set
// (in which case it is not a downwards match).
// The best match is the node with the fewest terminals
// not in the target.
// On ties a downwards match is preferred,
// otherwise the first node found in pre-order is used.
// If the best match is exact,
// the other exact match
// (the other side of an unrooted split)
// is stored as the alternative node.
//
// It returns false if no node matches the target.
// The target must have the size of the calculator sets.
func (s *Sets) FindFrom(id int, target *leafset.Set) (NodeInfo, bool) {
	f := &finder{
		sets:   s,
		target: target,
		best: NodeInfo{
			Node:        -1,
			Alternative: -1,
		},
	}
	f.find(id)
	return f.best, f.found
}

type finder struct {
	sets   *Sets
	target *leafset.Set
	best   NodeInfo
	found  bool
}

func (f *finder) find(id int) {
	ls := f.sets.Set(id)
	down := true
	extra, ok := f.target.Compare(ls, false)
	if !ok {
		extra, ok = f.target.Compare(ls, true)
		down = false
	}

	if ok {
		switch {
		case !f.found || extra < f.best.Mismatch:
			f.best = NodeInfo{
				Node:        id,
				Mismatch:    extra,
				Downwards:   down,
				Alternative: -1,
			}
			f.found = true
		case extra == f.best.Mismatch && down && !f.best.Downwards:
			alt := -1
			if extra == 0 {
				alt = f.best.Node
			}
			f.best = NodeInfo{
				Node:        id,
				Mismatch:    extra,
				Downwards:   down,
				Alternative: alt,
			}
		case extra == 0 && f.best.Mismatch == 0 && !f.best.HasAlternative():
			f.best.Alternative = id
		}
	}

	for _, c := range f.sets.t.Children(id) {
		f.find(c)
	}
}
