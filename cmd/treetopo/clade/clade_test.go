// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clade

import (
	"reflect"
	"testing"
)

func TestParseTerms(t *testing.T) {
	got := parseTerms(" Acer  campbellii,Acer platanoides,, ,Acer saccharinum ")
	want := []string{"Acer campbellii", "Acer platanoides", "Acer saccharinum"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms: got %v, want %v", got, want)
	}

	if got := parseTerms(""); len(got) != 0 {
		t.Errorf("empty list: got %v", got)
	}
}
