// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// TreeTopo is a tool for the topological comparison
// of phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/treetopo/cmd/treetopo/anc"
	"github.com/js-arias/treetopo/cmd/treetopo/clade"
	"github.com/js-arias/treetopo/cmd/treetopo/compare"
	"github.com/js-arias/treetopo/cmd/treetopo/supportcmd"
	"github.com/js-arias/treetopo/cmd/treetopo/tree"
)

var app = &command.Command{
	Usage: "treetopo <command> [<argument>...]",
	Short: "a tool for the topological comparison of phylogenetic trees",
}

func init() {
	app.Add(anc.Command)
	app.Add(clade.Command)
	app.Add(compare.Command)
	app.Add(supportcmd.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
