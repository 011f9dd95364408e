// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support implements the calculation
// of clade support values
// from a collection of trees.
//
// The support of a clade of a target tree
// is the number of source trees
// in which the clade is found.
// The source trees in which the clade
// is incompatible with at least one clade
// are counted as conflicts.
package support

import (
	"fmt"

	"github.com/js-arias/treetopo/leafset"
	"github.com/js-arias/treetopo/topology"
	"gonum.org/v1/gonum/stat"
)

// A Source is a tree used as a source
// of support values.
//
// A *timetree.Tree is a Source.
type Source interface {
	topology.Tree

	// Name returns the name of the tree.
	Name() string
}

// Node is the support of a node
// of the target tree.
type Node struct {
	// ID of the node in the target tree
	ID int

	// Number of source trees
	// in which the node is found.
	Freq int

	// Number of source trees
	// in which the node conflicts
	// with at least one clade.
	Conflict int
}

// Result is the support of the nodes
// of a target tree.
type Result struct {
	// Number of source trees
	Sources int

	// Internal nodes of the target tree
	// in pre-order,
	// the root is excluded.
	Nodes []Node
}

// Compute calculates the support of the nodes of a target tree
// using a set of source trees.
// All source trees must have the same terminals
// as the target tree.
func Compute(target topology.Tree, sources []Source, opts topology.Options) (*Result, error) {
	c := topology.New(target, opts)
	tSets := c.Decorate(target)

	r := &Result{
		Sources: len(sources),
	}
	for _, id := range clades(target) {
		r.Nodes = append(r.Nodes, Node{ID: id})
	}

	for _, src := range sources {
		if err := c.CompareTerms(src); err != nil {
			return nil, fmt.Errorf("tree %q: %w", src.Name(), err)
		}
		sSets := c.Decorate(src)
		srcClades := clades(src)

		for i := range r.Nodes {
			n := &r.Nodes[i]
			ls := tSets.Set(n.ID)
			if ni, ok := sSets.Find(ls); ok && ni.Mismatch == 0 {
				n.Freq++
				continue
			}
			for _, sc := range srcClades {
				if incompatible(ls, sSets.Set(sc)) {
					n.Conflict++
					break
				}
			}
		}
	}
	return r, nil
}

// Support returns the proportion of source trees
// that contain the node.
func (r *Result) Support(n Node) float64 {
	if r.Sources == 0 {
		return 0
	}
	return float64(n.Freq) / float64(r.Sources)
}

// Values returns the support values of the nodes.
func (r *Result) Values() []float64 {
	v := make([]float64, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		v = append(v, r.Support(n))
	}
	return v
}

// Mean returns the mean support of the nodes.
func (r *Result) Mean() float64 {
	return stat.Mean(r.Values(), nil)
}

// StdDev returns the standard deviation
// of the support of the nodes.
// It requires at least two nodes.
func (r *Result) StdDev() float64 {
	return stat.StdDev(r.Values(), nil)
}

// Incompatible returns true if the splits
// defined by a and b
// can not be found in the same tree.
func incompatible(a, b *leafset.Set) bool {
	if !a.Conflicts(b, false) {
		return false
	}
	if !b.Conflicts(a, false) {
		return false
	}
	return a.Conflicts(b, true)
}

// Clades returns the internal nodes of a tree
// in pre-order,
// excluding the root.
func clades(t topology.Tree) []int {
	var ids []int
	var walk func(id int)
	walk = func(id int) {
		if t.IsTerm(id) {
			return
		}
		if id != t.Root() {
			ids = append(ids, id)
		}
		for _, c := range t.Children(id) {
			walk(c)
		}
	}
	walk(t.Root())
	return ids
}
