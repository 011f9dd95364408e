// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package anc implements a command to import
// ancestral state reconstructions
// into the trees of a TreeTopo project.
package anc

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treetopo/project"
	"github.com/js-arias/treetopo/tags"
	"github.com/js-arias/treetopo/topology"
)

var Command = &command.Command{
	Usage: `anc --values <file> [--tree <tree-name>] [-o|--output <file>]
	[--unrooted] [--ignore-case] [--ignore-space] [--underscore]
	<project-file>`,
	Short: "import ancestral state reconstructions",
	Long: `
Command anc reads the trees and the tags of a TreeTopo project, and a file
with the values reconstructed at each tag (for example, from BayesTraits),
and assigns the values to the nodes of the trees.

The argument of the command is the name of the project file. The project must
define a tag file (see 'treetopo help tag-files').

The flag --values is required and it is the file with the reconstructed
values.

Each tag is assigned to the node that best matches the terminals of the tag.
If the match is not exact, or the node is found by the complement of its
descendants (in unrooted comparisons), a warning will be printed in the
standard error.

By default all the trees of the project will be used. Use the flag --tree to
use only the indicated tree.

The output is a tab-delimited file with the following columns:

	-tree   the name of the tree
	-node   the ID of the node
	-tag    the name of the tag
	-state  the name of the state
	-value  the value of the state

By default the output file will be named '<project>-anc.tab'. Use the flag
--output, or -o, to define a different name.

By default trees are compared as rooted trees. Use the flag --unrooted to
compare them as unrooted trees. The flags --ignore-case, --ignore-space, and
--underscore change the way in which terminal names are compared. See
'treetopo help terminal-names'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var valuesFile string
var treeName string
var output string
var unrooted bool
var ignoreCase bool
var ignoreSpace bool
var underscore bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&valuesFile, "values", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&unrooted, "unrooted", false, "")
	c.Flags().BoolVar(&ignoreCase, "ignore-case", false, "")
	c.Flags().BoolVar(&ignoreSpace, "ignore-space", false, "")
	c.Flags().BoolVar(&underscore, "underscore", false, "")
}

type nodeTag struct {
	tree string
	node int
	tag  string
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if valuesFile == "" {
		return c.UsageError("expecting values file, flag --values")
	}
	if output == "" {
		output = fmt.Sprintf("%s-anc.tab", args[0])
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}
	tg, err := p.Tags()
	if err != nil {
		return err
	}
	vals, err := readValues(valuesFile)
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

	var nodes []nodeTag
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			return fmt.Errorf("project %q: tree %q not found", args[0], tn)
		}
		nodes = append(nodes, locate(c, t, tg, opts)...)
	}

	if err := writeValues(nodes, vals, args[0]); err != nil {
		return err
	}
	return nil
}

func locate(c *command.Command, t *timetree.Tree, tg *tags.Data, opts topology.Options) []nodeTag {
	calc := topology.New(t, opts)
	found, unknown := tg.Locate(calc, calc.Decorate(t))

	var nodes []nodeTag
	for _, tag := range tg.Tags() {
		for _, u := range unknown[tag] {
			fmt.Fprintf(c.Stderr(), "WARNING: tree %q: tag %q: terminal %q not found\n", t.Name(), tag, u)
		}
		ni, ok := found[tag]
		if !ok {
			fmt.Fprintf(c.Stderr(), "WARNING: tree %q: tag %q: node not found\n", t.Name(), tag)
			continue
		}
		if ni.Mismatch > 0 {
			fmt.Fprintf(c.Stderr(), "WARNING: tree %q: tag %q: node %d has %d additional terminals\n", t.Name(), tag, ni.Node, ni.Mismatch)
		}
		if !ni.Downwards {
			fmt.Fprintf(c.Stderr(), "WARNING: tree %q: tag %q: matched by the complement of node %d\n", t.Name(), tag, ni.Node)
		}
		nodes = append(nodes, nodeTag{
			tree: t.Name(),
			node: ni.Node,
			tag:  tag,
		})
	}
	slices.SortStableFunc(nodes, func(a, b nodeTag) int {
		return a.node - b.node
	})
	return nodes
}

func readValues(name string) (*tags.Values, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := tags.ReadValues(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return v, nil
}

func writeValues(nodes []nodeTag, vals *tags.Values, p string) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# ancestral states from %q, project %q\n", valuesFile, p)
	fmt.Fprintf(w, "# date: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"tree", "node", "tag", "state", "value"}); err != nil {
		return err
	}

	for _, n := range nodes {
		for _, s := range vals.States(n.tag) {
			row := []string{
				n.tree,
				strconv.Itoa(n.node),
				n.tag,
				s,
				strconv.FormatFloat(vals.Value(n.tag, s), 'f', 6, 64),
			}
			if err := tsv.Write(row); err != nil {
				return err
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data on %q: %v", output, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("while writing data on %q: %v", output, err)
	}
	return nil
}
