// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tags implements tagged lists of terminals
// used to identify nodes in a tree
// (for example, the nodes of an ancestral state reconstruction),
// and the values reconstructed at each tag.
package tags

import (
	"slices"
	"strings"

	"github.com/js-arias/treetopo/topology"
)

// Data is a collection of tags,
// each one defined by a list of terminals.
type Data struct {
	tags map[string][]string
}

// New creates a new empty tag collection.
func New() *Data {
	return &Data{
		tags: make(map[string][]string),
	}
}

// Add adds a terminal to a tag.
func (d *Data) Add(tag, taxon string) {
	tag = canon(tag)
	if tag == "" {
		return
	}
	taxon = strings.Join(strings.Fields(taxon), " ")
	if taxon == "" {
		return
	}
	if slices.Contains(d.tags[tag], taxon) {
		return
	}
	d.tags[tag] = append(d.tags[tag], taxon)
}

// Tags returns the defined tags.
func (d *Data) Tags() []string {
	tags := make([]string, 0, len(d.tags))
	for t := range d.tags {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Taxa returns the terminals of a tag,
// in the order in which they were added.
func (d *Data) Taxa(tag string) []string {
	return slices.Clone(d.tags[canon(tag)])
}

// Locate returns the nodes of a decorated tree
// that best match each tag.
// Tags without a matching node
// are not included in the map.
// The terminals of a tag
// that are not defined in the calculator
// are returned as unknown.
func (d *Data) Locate(c *topology.Calculator, s *topology.Sets) (nodes map[string]topology.NodeInfo, unknown map[string][]string) {
	nodes = make(map[string]topology.NodeInfo, len(d.tags))
	unknown = make(map[string][]string)
	for _, tag := range d.Tags() {
		ls, u := c.TermSet(d.tags[tag])
		if len(u) > 0 {
			unknown[tag] = u
		}
		if ls.Count() == 0 {
			continue
		}
		ni, ok := s.Find(ls)
		if !ok {
			continue
		}
		nodes[tag] = ni
	}
	return nodes, unknown
}

func canon(tag string) string {
	return strings.ToLower(strings.Join(strings.Fields(tag), " "))
}
