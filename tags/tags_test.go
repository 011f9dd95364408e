// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tags_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/timetree"
	"github.com/js-arias/treetopo/tags"
	"github.com/js-arias/treetopo/topology"
)

func TestData(t *testing.T) {
	d := newData()

	testData(t, "data", d)
}

func TestTSV(t *testing.T) {
	d := newData()

	var w bytes.Buffer
	if err := d.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nd, err := tags.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testData(t, "tsv", nd)
}

func TestValues(t *testing.T) {
	v := tags.NewValues()
	v.Set("Node01", "Temperate", 0.85)
	v.Set("node01", "tropical", 0.15)
	v.Set("node02", "temperate", 0.99)

	var w bytes.Buffer
	if err := v.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	nv, err := tags.ReadValues(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	for _, x := range []*tags.Values{v, nv} {
		if g := x.Tags(); !reflect.DeepEqual(g, []string{"node01", "node02"}) {
			t.Errorf("tags: got %v, want %v", g, []string{"node01", "node02"})
		}
		if g := x.States("node01"); !reflect.DeepEqual(g, []string{"temperate", "tropical"}) {
			t.Errorf("states: got %v, want %v", g, []string{"temperate", "tropical"})
		}
		if g := x.Value("NODE01", "temperate"); g != 0.85 {
			t.Errorf("value: got %.6f, want %.6f", g, 0.85)
		}
		if g := x.Value("node02", "tropical"); g != 0 {
			t.Errorf("undefined value: got %.6f, want 0", g)
		}
	}
}

func TestReadValuesError(t *testing.T) {
	data := "tag\tstate\tvalue\nnode01\ttropical\tnone\n"
	if _, err := tags.ReadValues(strings.NewReader(data)); err == nil {
		t.Errorf("invalid value: expecting error")
	}

	data = "tag\tvalue\nnode01\t1\n"
	if _, err := tags.ReadValues(strings.NewReader(data)); err == nil {
		t.Errorf("missing field: expecting error")
	}
}

var treeData = `# acer tree
tree	node	parent	age	taxon
acer	0	-1	20000000	
acer	1	0	10000000	
acer	2	1	0	Acer campbellii
acer	3	1	0	Acer erythranthum
acer	4	0	10000000	
acer	5	4	0	Acer platanoides
acer	6	4	0	Acer saccharinum
`

func TestLocate(t *testing.T) {
	c, err := timetree.ReadTSV(strings.NewReader(treeData))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	tr := c.Tree("acer")

	d := newData()
	d.Add("node03", "Acer campbellii")
	d.Add("node03", "Acer rubrum")
	d.Add("node04", "Acer rubrum")

	calc := topology.New(tr, topology.Options{Rooted: true, Policy: topology.Policy{IgnoreCase: true}})
	nodes, unknown := d.Locate(calc, calc.Decorate(tr))

	camp, _ := tr.TaxNode("Acer campbellii")
	plat, _ := tr.TaxNode("Acer platanoides")
	want := map[string]topology.NodeInfo{
		"node01": {Node: tr.Parent(camp), Downwards: true, Alternative: -1},
		"node02": {Node: tr.Parent(plat), Downwards: true, Alternative: -1},
		"node03": {Node: camp, Downwards: true, Alternative: -1},
	}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("nodes: got %v, want %v", nodes, want)
	}

	wu := map[string][]string{
		"node03": {"Acer rubrum"},
		"node04": {"Acer rubrum"},
	}
	if !reflect.DeepEqual(unknown, wu) {
		t.Errorf("unknown: got %v, want %v", unknown, wu)
	}
}

func newData() *tags.Data {
	d := tags.New()

	d.Add("Node01", "Acer campbellii")
	d.Add("node01", "Acer   erythranthum")
	d.Add("node01", "Acer campbellii")
	d.Add("node02", "Acer platanoides")
	d.Add("node02", "Acer saccharinum")
	return d
}

func testData(t testing.TB, name string, d *tags.Data) {
	t.Helper()

	tg := []string{"node01", "node02"}
	if g := d.Tags(); !reflect.DeepEqual(g, tg) {
		t.Errorf("%s: tags: got %v, want %v", name, g, tg)
	}

	taxa := map[string][]string{
		"node01": {"Acer campbellii", "Acer erythranthum"},
		"node02": {"Acer platanoides", "Acer saccharinum"},
	}
	for tag, w := range taxa {
		if g := d.Taxa(tag); !reflect.DeepEqual(g, w) {
			t.Errorf("%s: taxa for %q: got %v, want %v", name, tag, g, w)
		}
	}
}
