// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a TreeTopo project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/treetopo/project"
)

var Command = &command.Command{
	Usage: "list [--sources] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a TreeTopo project and print the tree names
in the standard output.

The argument of the command is the name of the project file.

By default the trees of the "trees" dataset will be printed. If the flag
--sources is set, the source trees will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var sourcesFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&sourcesFlag, "sources", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	read := p.Trees
	if sourcesFlag {
		read = p.Sources
	}
	tc, err := read()
	if err != nil {
		return err
	}

	ls := tc.Names()
	for _, t := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", t)
	}
	return nil
}
