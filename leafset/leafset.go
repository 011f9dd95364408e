// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package leafset implements sets of terminals
// of a phylogenetic tree.
//
// A leaf set is a bitset over a fixed universe
// of terminal indices,
// used to represent the terminals below a node
// and to compare subtrees of different trees.
package leafset

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// A Set is a set of terminals.
// The size of a set is fixed at construction.
type Set struct {
	size int
	bits *bitset.BitSet
}

// New creates a new empty set
// for a universe of the given size.
func New(size int) *Set {
	if size < 0 {
		panic(fmt.Sprintf("leafset: invalid size %d", size))
	}
	return &Set{
		size: size,
		bits: bitset.New(uint(size)),
	}
}

// Len returns the size of the universe
// of the set.
func (s *Set) Len() int {
	return s.size
}

// Count returns the number of terminals
// in the set.
func (s *Set) Count() int {
	return int(s.bits.Count())
}

// Has returns true if the terminal
// with the given index is in the set.
func (s *Set) Has(i int) bool {
	s.checkIndex(i)
	return s.bits.Test(uint(i))
}

// SetTo adds the terminal with the given index to the set,
// or removes it if v is false.
func (s *Set) SetTo(i int, v bool) {
	s.checkIndex(i)
	s.bits.SetTo(uint(i), v)
}

// Members returns the indices of the terminals
// in the set,
// in increasing order.
func (s *Set) Members() []int {
	m := make([]int, 0, s.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		m = append(m, int(i))
	}
	return m
}

// Clone returns a copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		size: s.size,
		bits: s.bits.Clone(),
	}
}

// Union adds all the terminals of o
// into the set.
func (s *Set) Union(o *Set) {
	s.checkSize(o)
	s.bits.InPlaceUnion(o.bits)
}

// And returns a new set
// with the terminals present in both sets.
func (s *Set) And(o *Set) *Set {
	s.checkSize(o)
	return &Set{
		size: s.size,
		bits: s.bits.Intersection(o.bits),
	}
}

// Complement returns a new set
// with the terminals that are not in the set.
func (s *Set) Complement() *Set {
	return &Set{
		size: s.size,
		bits: s.bits.Complement(),
	}
}

// Compare compares the set,
// or its complement,
// with another set.
//
// If the set is not a subset of o
// ok will be false.
// Otherwise it returns the number of terminals in o
// that are not in the set,
// so a value of 0 means both sets are equal.
func (s *Set) Compare(o *Set, complement bool) (extra int, ok bool) {
	s.checkSize(o)
	b := s.side(complement)
	if !o.bits.IsSuperSet(b) {
		return 0, false
	}
	return int(o.bits.DifferenceCardinality(b)), true
}

// InSubtreeOf returns true if the set,
// or its complement,
// is a proper subset of parent.
func (s *Set) InSubtreeOf(parent *Set, complement bool) bool {
	s.checkSize(parent)
	b := s.side(complement)
	if !parent.bits.IsSuperSet(b) {
		return false
	}
	return parent.bits.DifferenceCardinality(b) > 0
}

// Conflicts returns true if the set,
// or its complement,
// shares at least one terminal with o
// and has at least one terminal not in o.
func (s *Set) Conflicts(o *Set, complement bool) bool {
	s.checkSize(o)
	b := s.side(complement)
	if b.IntersectionCardinality(o.bits) == 0 {
		return false
	}
	return b.DifferenceCardinality(o.bits) > 0
}

// ContainsAll returns true if all terminals of sub
// are in the set.
func (s *Set) ContainsAll(sub *Set) bool {
	s.checkSize(sub)
	return s.bits.IsSuperSet(sub.bits)
}

// Equal returns true if both sets
// have the same size
// and the same terminals.
func (s *Set) Equal(o *Set) bool {
	if o == nil || s.size != o.size {
		return false
	}
	return s.bits.Equal(o.bits)
}

// String returns the set as a sequence of 1 and 0,
// one for each index of the universe.
func (s *Set) String() string {
	var b strings.Builder
	b.Grow(s.size)
	for i := 0; i < s.size; i++ {
		if s.bits.Test(uint(i)) {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	return b.String()
}

func (s *Set) side(complement bool) *bitset.BitSet {
	if complement {
		return s.bits.Complement()
	}
	return s.bits
}

func (s *Set) checkIndex(i int) {
	if i < 0 || i >= s.size {
		panic(fmt.Sprintf("leafset: index %d out of range [0, %d)", i, s.size))
	}
}

func (s *Set) checkSize(o *Set) {
	if s.size != o.size {
		panic(fmt.Sprintf("leafset: size mismatch: %d != %d", s.size, o.size))
	}
}
