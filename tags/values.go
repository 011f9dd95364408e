// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tags

import (
	"slices"
	"strings"
)

// Values stores the values of the states
// reconstructed at each tag.
type Values struct {
	tags map[string]map[string]float64
}

// NewValues creates a new empty collection of values.
func NewValues() *Values {
	return &Values{
		tags: make(map[string]map[string]float64),
	}
}

// Set sets the value of a state
// at a given tag.
func (v *Values) Set(tag, state string, value float64) {
	tag = canon(tag)
	if tag == "" {
		return
	}
	state = strings.Join(strings.Fields(strings.ToLower(state)), " ")
	if state == "" {
		return
	}

	st, ok := v.tags[tag]
	if !ok {
		st = make(map[string]float64)
		v.tags[tag] = st
	}
	st[state] = value
}

// Value returns the value of a state at a tag.
func (v *Values) Value(tag, state string) float64 {
	st, ok := v.tags[canon(tag)]
	if !ok {
		return 0
	}
	state = strings.Join(strings.Fields(strings.ToLower(state)), " ")
	return st[state]
}

// States returns the states defined at a tag.
func (v *Values) States(tag string) []string {
	st, ok := v.tags[canon(tag)]
	if !ok {
		return nil
	}
	states := make([]string, 0, len(st))
	for s := range st {
		states = append(states, s)
	}
	slices.Sort(states)
	return states
}

// Tags returns the tags with values.
func (v *Values) Tags() []string {
	tags := make([]string, 0, len(v.tags))
	for t := range v.tags {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}
