// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package topology

import "strings"

// A Policy defines how terminal identifiers
// are normalized before a comparison.
//
// Runs of white space are always collapsed
// into a single space,
// and leading and trailing spaces are removed.
type Policy struct {
	// Compare identifiers without regard of the case.
	IgnoreCase bool

	// Remove all white spaces.
	IgnoreWhitespace bool

	// Underscores are read as spaces,
	// as in newick files.
	UnderscoreAsSpace bool
}

// Normalize returns an identifier
// in its normalized form.
func (p Policy) Normalize(s string) string {
	if p.UnderscoreAsSpace {
		s = strings.ReplaceAll(s, "_", " ")
	}
	sep := " "
	if p.IgnoreWhitespace {
		sep = ""
	}
	s = strings.Join(strings.Fields(s), sep)
	if p.IgnoreCase {
		s = strings.ToLower(s)
	}
	return s
}
