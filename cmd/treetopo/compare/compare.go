// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package compare implements a command to compare
// the terminals of the trees in a TreeTopo project.
package compare

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treetopo/project"
	"github.com/js-arias/treetopo/topology"
)

var Command = &command.Command{
	Usage: `compare [--ref <tree-name>] [--sources]
	[--ignore-case] [--ignore-space] [--underscore]
	<project-file>`,
	Short: "compare the terminals of the trees in a project",
	Long: `
Command compare reads the trees of a TreeTopo project and checks that all the
trees have the same terminals as a reference tree.

The argument of the command is the name of the project file.

By default the first tree of the project will be used as the reference tree.
Use the flag --ref to use a different tree as reference.

By default only the trees of the "trees" dataset will be compared. If the
flag --sources is set, the source trees will be also compared.

For each compared tree, the result will be printed in the standard output. If
the terminals of a tree are different from the terminals of the reference
tree, up to ten terminals not found in the reference, and up to ten terminals
of the reference missing in the tree, will be printed.

The flags --ignore-case, --ignore-space, and --underscore change the way in
which terminal names are compared. See 'treetopo help terminal-names'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var refName string
var sourcesFlag bool
var ignoreCase bool
var ignoreSpace bool
var underscore bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&refName, "ref", "", "")
	c.Flags().BoolVar(&sourcesFlag, "sources", false, "")
	c.Flags().BoolVar(&ignoreCase, "ignore-case", false, "")
	c.Flags().BoolVar(&ignoreSpace, "ignore-space", false, "")
	c.Flags().BoolVar(&underscore, "underscore", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}
	names := tc.Names()
	if len(names) == 0 {
		return fmt.Errorf("project %q: no trees defined", args[0])
	}
	if refName == "" {
		refName = names[0]
	}
	ref := tc.Tree(refName)
	if ref == nil {
		return fmt.Errorf("project %q: tree %q not found", args[0], refName)
	}

	calc := topology.New(ref, topology.Options{
		Policy: topology.Policy{
			IgnoreCase:        ignoreCase,
			IgnoreWhitespace:  ignoreSpace,
			UnderscoreAsSpace: underscore,
		},
	})

	trees := make([]*timetree.Tree, 0, len(names))
	for _, tn := range names {
		if tn == ref.Name() {
			continue
		}
		trees = append(trees, tc.Tree(tn))
	}
	if sourcesFlag {
		sc, err := p.Sources()
		if err != nil {
			return err
		}
		for _, tn := range sc.Names() {
			trees = append(trees, sc.Tree(tn))
		}
	}

	diff := 0
	for _, t := range trees {
		if err := calc.CompareTerms(t); err != nil {
			fmt.Fprintf(c.Stdout(), "tree %q: %v\n", t.Name(), err)
			diff++
			continue
		}
		fmt.Fprintf(c.Stdout(), "tree %q: same terminals\n", t.Name())
	}
	if diff > 0 {
		fmt.Fprintf(c.Stderr(), "WARNING: %d of %d trees with different terminals from tree %q\n", diff, len(trees), ref.Name())
	}
	return nil
}
