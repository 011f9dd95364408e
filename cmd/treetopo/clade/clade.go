// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clade implements a command to find
// the node defined by a set of terminals.
package clade

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treetopo/project"
	"github.com/js-arias/treetopo/topology"
)

var Command = &command.Command{
	Usage: `clade --terms <terminal-list> [--tree <tree-name>]
	[--unrooted] [--ignore-case] [--ignore-space] [--underscore]
	<project-file>`,
	Short: "find the node defined by a set of terminals",
	Long: `
Command clade reads the trees of a TreeTopo project, and search in each tree
the node that best matches a set of terminals, for example, to define the
root of a tree using a set of terminals as the outgroup.

The argument of the command is the name of the project file.

The flag --terms is required and it is a comma-separated list of the
terminals that define the clade.

By default all the trees of the project will be searched. Use the flag --tree
to search only the indicated tree.

The output is a tab-delimited table printed in the standard output, with the
following columns:

	-tree         the name of the tree
	-node         the ID of the matched node
	-mismatch     the number of terminals in the matched node that are not
	              in the terminal list
	-side         "down" if the terminals are descendants of the node, or
	              "up" if the terminals are all the terminals that are not
	              descendants of the node.
	-alternative  the ID of another node that matches exactly the same
	              terminals, or "-" if there is none.

By default trees are compared as rooted trees. Use the flag --unrooted to
compare them as unrooted trees. The flags --ignore-case, --ignore-space, and
--underscore change the way in which terminal names are compared. See
'treetopo help terminal-names'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var termsFlag string
var treeName string
var unrooted bool
var ignoreCase bool
var ignoreSpace bool
var underscore bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&termsFlag, "terms", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&unrooted, "unrooted", false, "")
	c.Flags().BoolVar(&ignoreCase, "ignore-case", false, "")
	c.Flags().BoolVar(&ignoreSpace, "ignore-space", false, "")
	c.Flags().BoolVar(&underscore, "underscore", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	terms := parseTerms(termsFlag)
	if len(terms) == 0 {
		return c.UsageError("expecting terminal list, flag --terms")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}

	opts := topology.Options{
		Policy: topology.Policy{
			IgnoreCase:        ignoreCase,
			IgnoreWhitespace:  ignoreSpace,
			UnderscoreAsSpace: underscore,
		},
		Rooted: !unrooted,
	}

	fmt.Fprintf(c.Stdout(), "tree\tnode\tmismatch\tside\talternative\n")
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			fmt.Fprintf(c.Stderr(), "WARNING: tree %q not found\n", tn)
			continue
		}
		row, ok := findClade(c, t, terms, opts)
		if !ok {
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\n", row)
	}
	return nil
}

func findClade(c *command.Command, t *timetree.Tree, terms []string, opts topology.Options) (string, bool) {
	calc := topology.New(t, opts)
	target, unknown := calc.TermSet(terms)
	for _, u := range unknown {
		fmt.Fprintf(c.Stderr(), "WARNING: tree %q: terminal %q not found\n", t.Name(), u)
	}
	if target.Count() == 0 {
		return "", false
	}

	ni, ok := calc.Decorate(t).Find(target)
	if !ok {
		fmt.Fprintf(c.Stderr(), "WARNING: tree %q: no node matches the terminals\n", t.Name())
		return "", false
	}

	side := "down"
	if !ni.Downwards {
		side = "up"
	}
	alt := "-"
	if ni.HasAlternative() {
		alt = strconv.Itoa(ni.Alternative)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%s", t.Name(), ni.Node, ni.Mismatch, side, alt), true
}

func parseTerms(s string) []string {
	var terms []string
	for _, tx := range strings.Split(s, ",") {
		tx = strings.Join(strings.Fields(tx), " ")
		if tx == "" {
			continue
		}
		terms = append(terms, tx)
	}
	return terms
}
