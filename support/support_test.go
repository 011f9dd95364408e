// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package support_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/js-arias/timetree"
	"github.com/js-arias/treetopo/support"
	"github.com/js-arias/treetopo/topology"
)

var _ support.Source = (*timetree.Tree)(nil)

// target is (((A,B),C),(D,E)).
// same is the target tree.
// swap is (((A,C),B),(D,E)).
// nested is ((A,B),(C,(D,E))).
// other has a terminal F instead of E.
var treeData = `# trees for support tests
tree	node	parent	age	taxon
target	0	-1	30000000	
target	1	0	20000000	
target	2	1	10000000	
target	3	2	0	A
target	4	2	0	B
target	5	1	0	C
target	6	0	10000000	
target	7	6	0	D
target	8	6	0	E
same	0	-1	30000000	
same	1	0	20000000	
same	2	1	10000000	
same	3	2	0	A
same	4	2	0	B
same	5	1	0	C
same	6	0	10000000	
same	7	6	0	D
same	8	6	0	E
swap	0	-1	30000000	
swap	1	0	20000000	
swap	2	1	10000000	
swap	3	2	0	A
swap	4	2	0	C
swap	5	1	0	B
swap	6	0	10000000	
swap	7	6	0	D
swap	8	6	0	E
nested	0	-1	30000000	
nested	1	0	10000000	
nested	2	1	0	A
nested	3	1	0	B
nested	4	0	20000000	
nested	5	4	0	C
nested	6	4	10000000	
nested	7	6	0	D
nested	8	6	0	E
other	0	-1	30000000	
other	1	0	10000000	
other	2	1	0	A
other	3	1	0	B
other	4	0	20000000	
other	5	4	0	C
other	6	4	10000000	
other	7	6	0	D
other	8	6	0	F
`

func readTrees(t testing.TB) *timetree.Collection {
	t.Helper()

	c, err := timetree.ReadTSV(strings.NewReader(treeData))
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	return c
}

func sources(c *timetree.Collection, names ...string) []support.Source {
	src := make([]support.Source, 0, len(names))
	for _, n := range names {
		src = append(src, c.Tree(n))
	}
	return src
}

type want struct {
	freq     int
	conflict int
}

func TestCompute(t *testing.T) {
	c := readTrees(t)
	target := c.Tree("target")

	a, _ := target.TaxNode("A")
	d, _ := target.TaxNode("D")
	ab := target.Parent(a)
	abc := target.Parent(ab)
	de := target.Parent(d)

	src := sources(c, "same", "swap", "nested")

	r, err := support.Compute(target, src, topology.Options{Rooted: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testResult(t, "rooted", r, map[int]want{
		ab:  {freq: 2, conflict: 1},
		abc: {freq: 2, conflict: 1},
		de:  {freq: 3, conflict: 0},
	})

	// in unrooted trees
	// ((A,B),C) is the complement of (D,E)
	r, err = support.Compute(target, src, topology.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testResult(t, "unrooted", r, map[int]want{
		ab:  {freq: 2, conflict: 1},
		abc: {freq: 3, conflict: 0},
		de:  {freq: 3, conflict: 0},
	})

	if m := r.Mean(); math.Abs(m-8.0/9.0) > 1e-9 {
		t.Errorf("mean: got %.6f, want %.6f", m, 8.0/9.0)
	}
	if sd := r.StdDev(); sd <= 0 {
		t.Errorf("stddev: got %.6f, want > 0", sd)
	}
}

func TestComputeDifferentTerms(t *testing.T) {
	c := readTrees(t)
	target := c.Tree("target")

	_, err := support.Compute(target, sources(c, "same", "other"), topology.Options{})
	var te *topology.TermsError
	if !errors.As(err, &te) {
		t.Fatalf("got error %v, want *topology.TermsError", err)
	}
	if len(te.Unknown) != 1 || len(te.Missing) != 1 {
		t.Errorf("got unknown %v, missing %v, want a single term in each", te.Unknown, te.Missing)
	}
	if !strings.Contains(err.Error(), `"other"`) {
		t.Errorf("error %q: expecting tree name", err)
	}
}

func testResult(t testing.TB, name string, r *support.Result, w map[int]want) {
	t.Helper()

	if len(r.Nodes) != len(w) {
		t.Errorf("%s: got %d nodes, want %d", name, len(r.Nodes), len(w))
	}
	for _, n := range r.Nodes {
		x, ok := w[n.ID]
		if !ok {
			t.Errorf("%s: unexpected node %d", name, n.ID)
			continue
		}
		if n.Freq != x.freq {
			t.Errorf("%s: node %d: freq: got %d, want %d", name, n.ID, n.Freq, x.freq)
		}
		if n.Conflict != x.conflict {
			t.Errorf("%s: node %d: conflict: got %d, want %d", name, n.ID, n.Conflict, x.conflict)
		}
	}
}
