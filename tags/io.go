// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tags

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads a collection of tags
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tag, the name of the tag
//   - taxon, the name of a terminal in the tag
//
// Here is an example file:
//
//	tag	taxon
//	node01	Acer campbellii
//	node01	Acer erythranthum
//	node02	Acer platanoides
//	node02	Acer saccharinum
func ReadTSV(r io.Reader) (*Data, error) {
	tab, fields, err := newReader(r, []string{"tag", "taxon"})
	if err != nil {
		return nil, err
	}

	d := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tag"
		tag := canon(row[fields[f]])
		if tag == "" {
			continue
		}

		f = "taxon"
		tax := strings.Join(strings.Fields(row[fields[f]]), " ")
		if tax == "" {
			continue
		}

		d.Add(tag, tax)
	}
	return d, nil
}

// TSV writes a collection of tags as a TSV file.
func (d *Data) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"tag", "taxon"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tag := range d.Tags() {
		for _, tx := range d.tags[tag] {
			row := []string{
				tag,
				tx,
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ReadValues reads the values of the states
// reconstructed at each tag
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tag, the name of the tag
//   - state, the name of the state
//   - value, the value of the state at the tag
//
// Here is an example file:
//
//	tag	state	value
//	node01	temperate	0.850000
//	node01	tropical	0.150000
//	node02	temperate	0.990000
//	node02	tropical	0.010000
func ReadValues(r io.Reader) (*Values, error) {
	tab, fields, err := newReader(r, []string{"tag", "state", "value"})
	if err != nil {
		return nil, err
	}

	v := NewValues()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tag"
		tag := canon(row[fields[f]])
		if tag == "" {
			continue
		}

		f = "state"
		state := strings.Join(strings.Fields(strings.ToLower(row[fields[f]])), " ")
		if state == "" {
			continue
		}

		f = "value"
		val, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		v.Set(tag, state, val)
	}
	return v, nil
}

// TSV writes the values as a TSV file.
func (v *Values) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"tag", "state", "value"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tag := range v.Tags() {
		for _, s := range v.States(tag) {
			row := []string{
				tag,
				s,
				strconv.FormatFloat(v.tags[tag][s], 'f', 6, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

func newReader(r io.Reader, header []string) (*csv.Reader, map[string]int, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, nil, fmt.Errorf("expecting field %q", h)
		}
	}
	return tab, fields, nil
}
