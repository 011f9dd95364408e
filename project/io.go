// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/timetree"
	"github.com/js-arias/treetopo/tags"
)

// Sources reads the collection of source trees
// as defined in a project.
func (p *Project) Sources() (*timetree.Collection, error) {
	return p.readTrees(Sources)
}

// Tags reads a tag collection file
// as defined in a project.
func (p *Project) Tags() (*tags.Data, error) {
	name := p.Path(Tags)
	if name == "" {
		return nil, fmt.Errorf("tags not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := tags.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return d, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	return p.readTrees(Trees)
}

func (p *Project) readTrees(set Dataset) (*timetree.Collection, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
