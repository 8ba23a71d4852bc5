package jot

import (
	"strings"
	"testing"
)

func TestDiffEqual(t *testing.T) {
	a, err := ParseString(`{"a": [1, 2]}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseString(`{"a": [1, 2]}`)
	if err != nil {
		t.Fatal(err)
	}
	if d := Diff(a, b); d != "" {
		t.Errorf("diff of equal documents: %q", d)
	}
}

func TestDiffDifferent(t *testing.T) {
	a, err := ParseString(`{"name": "alice"}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseString(`{"name": "bob"}`)
	if err != nil {
		t.Fatal(err)
	}
	d := Diff(a, b)
	if d == "" {
		t.Fatal("no diff for different documents")
	}
	for _, frag := range []string{"alice", "bob"} {
		if !strings.Contains(d, frag) {
			t.Errorf("diff missing %q:\n%s", frag, d)
		}
	}
}
