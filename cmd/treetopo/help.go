// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(namesGuide)
	app.Add(projectsGuide)
	app.Add(tagFilesGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
TreeTopo requires several files to compare trees. To reduce the burden of
keeping track of many files, a single project file is used to hold the
reference of all files required in the analysis. This guide explains the
structure of the file, but most of the time, the best and most secure way to
edit or view this file is by using treetopo commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# treetopo project files
	dataset	path
	sources	bootstrap.tab
	tags	tags.tab
	trees	trees.tab

The valid file types are:

- Trees. Defined by the dataset keyword "trees". This file contains one or
  more trees in the form of a tab-delimited file. These are the trees that
  receive support values, or ancestral states. The recommended way to add a
  tree file is by using the command 'treetopo tree add'.
- Source trees. Defined by the dataset keyword "sources". This file contains
  the trees used to calculate support values (for example, bootstrap
  replicates or a posterior sample). The recommended way to add a source tree
  file is by using the command 'treetopo tree add --sources'.
- Tags. Defined by the dataset keyword "tags". This file contains the
  terminals that define the nodes of an ancestral state reconstruction.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In TreeTopo, phylogenetic trees are stored in a tab-delimited file. The
advantage of using a tab-delimited file is that it would be easier to
manipulate trees than in traditional newick files; for example, it would be
easier for commands in TreeTopo, as well as for third-party applications, to
understand the node IDs.

The recommended way to interact with trees in a TreeTopo project is by using
the commands in "treetopo tree".

A TreeTopo tree file is a tab-delimited file with the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

Here is an example file:

	# time calibrated phylogenetic tree
	tree	node	parent	age	taxon
	dinosaurs	0	-1	235000000
	dinosaurs	1	0	230000000	Eoraptor lunensis
	dinosaurs	2	0	170000000
	dinosaurs	3	2	145000000	Ceratosaurus nasicornis
	dinosaurs	4	2	71000000	Carnotaurus sastrei

In a TreeTopo project, the file that contains the trees is indicated with the
"trees" keyword, and the file with the source trees with the "sources"
keyword.
	`,
}

var tagFilesGuide = &command.Command{
	Usage: "tag-files",
	Short: "about tag files",
	Long: `
Programs for ancestral state reconstruction (for example, BayesTraits) define
the nodes of a tree using tags, that is, a name and the list of terminals
whose most recent common ancestor is the node.

A tag file is a tab-delimited file with the following columns:

	-tag    the name of the tag
	-taxon  the name of a terminal of the tag

Here is an example file:

	tag	taxon
	node01	Acer campbellii
	node01	Acer erythranthum
	node02	Acer platanoides
	node02	Acer saccharinum

The reconstructed values are read from a tab-delimited file with the
following columns:

	-tag    the name of the tag
	-state  the name of the state
	-value  the value (for example, a probability) of the state

In a TreeTopo project, the file that contains the tags is indicated with the
"tags" keyword.
	`,
}

var namesGuide = &command.Command{
	Usage: "terminal-names",
	Short: "about the comparison of terminal names",
	Long: `
To compare two trees, TreeTopo assigns an index to each terminal name of a
reference tree, and then search the terminals of the other tree using their
names.

By default, runs of white spaces are collapsed into a single space, and
leading and trailing spaces are ignored. The flags --ignore-case,
--ignore-space, and --underscore, available in comparison commands, modify
the way in which names are compared:

	--ignore-case  compare names without regard of the case.
	--ignore-space remove all white spaces.
	--underscore   read underscores as spaces (as in newick files).

By default trees are compared as rooted trees. If the flag --unrooted is
set, a node can match a group of terminals either by its own descendants, or
by all the terminals that are not its descendants, as both define the same
split in an unrooted tree.
	`,
}
