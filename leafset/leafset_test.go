// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package leafset_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/treetopo/leafset"
)

func newSet(size int, members ...int) *leafset.Set {
	s := leafset.New(size)
	for _, m := range members {
		s.SetTo(m, true)
	}
	return s
}

func TestNew(t *testing.T) {
	for _, size := range []int{0, 1, 5, 64, 65, 130} {
		s := leafset.New(size)
		if s.Len() != size {
			t.Errorf("size %d: len: got %d", size, s.Len())
		}
		if c := s.Count(); c != 0 {
			t.Errorf("size %d: count: got %d, want 0", size, c)
		}
		for i := 0; i < size; i++ {
			if s.Has(i) {
				t.Errorf("size %d: index %d: got true, want false", size, i)
			}
		}
	}
}

func TestSetTo(t *testing.T) {
	s := newSet(70, 0, 3, 64, 69)
	if c := s.Count(); c != 4 {
		t.Errorf("count: got %d, want %d", c, 4)
	}
	if m := s.Members(); !reflect.DeepEqual(m, []int{0, 3, 64, 69}) {
		t.Errorf("members: got %v, want %v", m, []int{0, 3, 64, 69})
	}

	s.SetTo(3, false)
	if s.Has(3) {
		t.Errorf("index 3: got true, want false")
	}
	if c := s.Count(); c != 3 {
		t.Errorf("count: got %d, want %d", c, 3)
	}
}

func TestString(t *testing.T) {
	s := newSet(5, 0, 2)
	if g := s.String(); g != "10100" {
		t.Errorf("string: got %q, want %q", g, "10100")
	}
	if g := s.Complement().String(); g != "01011" {
		t.Errorf("complement string: got %q, want %q", g, "01011")
	}
}

func TestComplement(t *testing.T) {
	sets := []*leafset.Set{
		newSet(0),
		newSet(4),
		newSet(4, 1, 2),
		newSet(67, 0, 65, 66),
	}
	for _, s := range sets {
		c := s.Complement()
		if c.Count() != s.Len()-s.Count() {
			t.Errorf("set %s: complement count: got %d, want %d", s, c.Count(), s.Len()-s.Count())
		}
		if cc := c.Complement(); !cc.Equal(s) {
			t.Errorf("set %s: double complement: got %s", s, cc)
		}
	}

	// the receiver is not modified
	s := newSet(4, 1)
	s.Complement()
	if g := s.String(); g != "0100" {
		t.Errorf("receiver: got %q, want %q", g, "0100")
	}
}

func TestUnionAnd(t *testing.T) {
	a := newSet(6, 0, 1, 2)
	b := newSet(6, 2, 3)

	and := a.And(b)
	if g := and.String(); g != "001000" {
		t.Errorf("and: got %q, want %q", g, "001000")
	}
	if and.Count() > min(a.Count(), b.Count()) {
		t.Errorf("and: count %d greater than operands", and.Count())
	}
	if a.String() != "111000" || b.String() != "001100" {
		t.Errorf("and: operands modified: %s %s", a, b)
	}

	a.Union(b)
	if g := a.String(); g != "111100" {
		t.Errorf("union: got %q, want %q", g, "111100")
	}
}

func TestCompare(t *testing.T) {
	tests := map[string]struct {
		s, o       *leafset.Set
		complement bool
		extra      int
		ok         bool
	}{
		"equal": {
			s:     newSet(4, 0, 1),
			o:     newSet(4, 0, 1),
			extra: 0,
			ok:    true,
		},
		"superset": {
			s:     newSet(4, 0, 1, 2),
			o:     newSet(4, 0, 1, 2, 3),
			extra: 1,
			ok:    true,
		},
		"not subset": {
			s:  newSet(4, 0, 1),
			o:  newSet(4, 1, 2),
			ok: false,
		},
		"complement equal": {
			s:          newSet(4, 0, 1),
			o:          newSet(4, 2, 3),
			complement: true,
			extra:      0,
			ok:         true,
		},
		"complement not subset": {
			s:          newSet(4, 0, 1),
			o:          newSet(4, 0, 1),
			complement: true,
			ok:         false,
		},
	}

	for name, test := range tests {
		extra, ok := test.s.Compare(test.o, test.complement)
		if ok != test.ok {
			t.Errorf("%s: got %v, want %v", name, ok, test.ok)
			continue
		}
		if ok && extra != test.extra {
			t.Errorf("%s: extra: got %d, want %d", name, extra, test.extra)
		}
	}

	a := newSet(5, 1, 3)
	if extra, ok := a.Compare(a, false); !ok || extra != 0 {
		t.Errorf("reflexive: got %d %v, want 0 true", extra, ok)
	}
}

func TestInSubtreeOf(t *testing.T) {
	parent := newSet(5, 0, 1, 2)
	if !newSet(5, 0, 1).InSubtreeOf(parent, false) {
		t.Errorf("proper subset: got false, want true")
	}
	if parent.InSubtreeOf(parent, false) {
		t.Errorf("equal set: got true, want false")
	}
	if newSet(5, 0, 3).InSubtreeOf(parent, false) {
		t.Errorf("not a subset: got true, want false")
	}
	if !newSet(5, 2, 3, 4).InSubtreeOf(parent, true) {
		t.Errorf("complement subset: got false, want true")
	}
}

func TestConflicts(t *testing.T) {
	a := newSet(5, 0, 1)
	if !a.Conflicts(newSet(5, 1, 2), false) {
		t.Errorf("partial overlap: got false, want true")
	}
	if a.Conflicts(newSet(5, 0, 1, 2), false) {
		t.Errorf("subset: got true, want false")
	}
	if a.Conflicts(newSet(5, 3, 4), false) {
		t.Errorf("disjoint: got true, want false")
	}
	if !a.Conflicts(newSet(5, 0, 2), true) {
		t.Errorf("complement overlap: got false, want true")
	}
}

func TestContainsAll(t *testing.T) {
	a := newSet(5, 0, 1, 2)
	if !a.ContainsAll(a) {
		t.Errorf("self: got false, want true")
	}
	if !a.ContainsAll(newSet(5, 1)) {
		t.Errorf("subset: got false, want true")
	}
	if a.ContainsAll(newSet(5, 1, 4)) {
		t.Errorf("missing member: got true, want false")
	}
}

func TestEqual(t *testing.T) {
	if !newSet(5, 1).Equal(newSet(5, 1)) {
		t.Errorf("same bits: got false, want true")
	}
	if newSet(5, 1).Equal(newSet(6, 1)) {
		t.Errorf("different size: got true, want false")
	}
	if newSet(5, 1).Equal(newSet(5, 2)) {
		t.Errorf("different bits: got true, want false")
	}
}

func TestPanics(t *testing.T) {
	tests := map[string]func(){
		"negative size":  func() { leafset.New(-1) },
		"index range":    func() { leafset.New(3).SetTo(3, true) },
		"negative index": func() { leafset.New(3).Has(-1) },
		"union size":     func() { leafset.New(3).Union(leafset.New(4)) },
		"and size":       func() { leafset.New(3).And(leafset.New(4)) },
		"compare size":   func() { leafset.New(3).Compare(leafset.New(4), false) },
		"contains size":  func() { leafset.New(3).ContainsAll(leafset.New(4)) },
	}
	for name, fn := range tests {
		testPanic(t, name, fn)
	}
}

func testPanic(t testing.TB, name string, fn func()) {
	t.Helper()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expecting panic", name)
		}
	}()
	fn()
}
