// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package topology

import (
	"fmt"
	"strings"
)

// MaxListed is the maximum number of identifiers
// listed in the message of a TermsError.
const MaxListed = 10

// A TermsError is returned when the terminals of a tree
// differ from the terminals of a calculator.
type TermsError struct {
	// Terminals of the tree
	// not defined in the calculator.
	Unknown []string

	// Terminals of the calculator
	// not found in the tree.
	Missing []string
}

func (e *TermsError) Error() string {
	var b strings.Builder
	b.WriteString("terminals differ")
	if len(e.Unknown) > 0 {
		b.WriteString(": unknown terminals: ")
		writeList(&b, e.Unknown)
	}
	if len(e.Missing) > 0 {
		b.WriteString(": missing terminals: ")
		writeList(&b, e.Missing)
	}
	return b.String()
}

func writeList(b *strings.Builder, ls []string) {
	n := min(len(ls), MaxListed)
	for i, s := range ls[:n] {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q", s)
	}
	if len(ls) > n {
		fmt.Fprintf(b, " (and %d more)", len(ls)-n)
	}
}
