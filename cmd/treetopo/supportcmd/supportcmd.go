// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package supportcmd implements a command to calculate
// the support values of the nodes of the trees
// in a TreeTopo project.
package supportcmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/treetopo/project"
	"github.com/js-arias/treetopo/support"
	"github.com/js-arias/treetopo/topology"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `support [--tree <tree-name>] [-o|--output <file>]
	[--plot <file>]
	[--unrooted] [--ignore-case] [--ignore-space] [--underscore]
	<project-file>`,
	Short: "calculate support values",
	Long: `
Command support reads the trees and the source trees of a TreeTopo project,
and calculates the support of each node of the trees, as the proportion of
source trees in which the node is found.

The argument of the command is the name of the project file. The project must
define source trees (see 'treetopo help projects'). All the source trees must
have the same terminals as the trees.

By default the support of all the trees of the project will be calculated.
Use the flag --tree to calculate the support of the indicated tree only.

The output is a tab-delimited file with the following columns:

	-tree      the name of the tree
	-node      the ID of the node
	-freq      the number of source trees with the node
	-conflict  the number of source trees with at least one clade
	           incompatible with the node
	-support   the proportion of source trees with the node

The root and terminal nodes are not reported. By default the output file will
be named '<project>-support.tab'. Use the flag --output, or -o, to define a
different name.

The mean support of each tree will be printed in the standard output. If the
flag --plot is defined, a histogram of the support values will be saved in the
indicated file.

By default trees are compared as rooted trees. Use the flag --unrooted to
compare them as unrooted trees. The flags --ignore-case, --ignore-space, and
--underscore change the way in which terminal names are compared. See
'treetopo help terminal-names'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var output string
var plotFile string
var unrooted bool
var ignoreCase bool
var ignoreSpace bool
var underscore bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().BoolVar(&unrooted, "unrooted", false, "")
	c.Flags().BoolVar(&ignoreCase, "ignore-case", false, "")
	c.Flags().BoolVar(&ignoreSpace, "ignore-space", false, "")
	c.Flags().BoolVar(&underscore, "underscore", false, "")
}

type treeSupport struct {
	name string
	r    *support.Result
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if output == "" {
		output = fmt.Sprintf("%s-support.tab", args[0])
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}
	sc, err := p.Sources()
	if err != nil {
		return err
	}

	src := make([]support.Source, 0, len(sc.Names()))
	for _, tn := range sc.Names() {
		src = append(src, sc.Tree(tn))
	}
	if len(src) == 0 {
		msg := fmt.Sprintf("source trees not defined in project %q", args[0])
		return c.UsageError(msg)
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

	var res []treeSupport
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			return fmt.Errorf("project %q: tree %q not found", args[0], tn)
		}
		r, err := support.Compute(t, src, opts)
		if err != nil {
			return fmt.Errorf("tree %q: %v", tn, err)
		}
		res = append(res, treeSupport{name: t.Name(), r: r})
		fmt.Fprintf(c.Stdout(), "%s\tmean support: %.6f\tsd: %.6f\n", t.Name(), r.Mean(), r.StdDev())
	}

	if err := writeSupport(res, args[0], len(src)); err != nil {
		return err
	}

	if plotFile != "" {
		if err := makePlot(res); err != nil {
			return err
		}
	}
	return nil
}

func writeSupport(res []treeSupport, p string, sources int) (err error) {
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
	fmt.Fprintf(w, "# support values from %d source trees, project %q\n", sources, p)
	fmt.Fprintf(w, "# date: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"tree", "node", "freq", "conflict", "support"}); err != nil {
		return err
	}

	for _, ts := range res {
		for _, n := range ts.r.Nodes {
			row := []string{
				ts.name,
				strconv.Itoa(n.ID),
				strconv.Itoa(n.Freq),
				strconv.Itoa(n.Conflict),
				strconv.FormatFloat(ts.r.Support(n), 'f', 6, 64),
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

func makePlot(res []treeSupport) error {
	var vals plotter.Values
	for _, ts := range res {
		vals = append(vals, ts.r.Values()...)
	}
	if len(vals) == 0 {
		return nil
	}

	p := plot.New()
	p.X.Label.Text = "support"
	p.Y.Label.Text = "nodes"

	h, err := plotter.NewHist(vals, 10)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	p.Add(h)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
