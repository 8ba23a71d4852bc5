package jot

import (
	"testing"

	"github.com/jot-format/jot/ir"
)

func TestYAMLRoundTrip(t *testing.T) {
	obj, err := FromYAML([]byte("name: alice\nage: 30\ntags:\n  - a\n  - b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := GetAs[string](obj, "name"); v != "alice" {
		t.Errorf("name = %q", v)
	}
	if v, _ := GetAs[int](obj, "age"); v != 30 {
		t.Errorf("age = %d", v)
	}
	d, err := obj.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(obj.Node(), back.Node()) {
		t.Errorf("yaml round trip mismatch:\n%s", d)
	}
}

func TestFromYAMLBadInput(t *testing.T) {
	if _, err := FromYAML([]byte(": : :")); err == nil {
		t.Errorf("bad yaml parsed without error")
	}
}
