package jot

import (
	"errors"
	"testing"
)

func TestApplyPatch(t *testing.T) {
	doc, err := ParseString(`{"name": "alice", "tags": ["a"]}`)
	if err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[
		{"op": "replace", "path": "/name", "value": "bob"},
		{"op": "add", "path": "/tags/-", "value": "b"}
	]`)
	out, err := doc.ApplyPatch(patch)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := GetAs[string](out, "name"); v != "bob" {
		t.Errorf("name = %q, want bob", v)
	}
	tags, err := out.Get("tags")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := AsArray[string](tags); len(got) != 2 || got[1] != "b" {
		t.Errorf("tags = %v", got)
	}
	// the receiver is untouched
	if v, _ := GetAs[string](doc, "name"); v != "alice" {
		t.Errorf("receiver mutated: name = %q", v)
	}
}

func TestApplyPatchBadPatch(t *testing.T) {
	doc := New()
	if _, err := doc.ApplyPatch([]byte(`not a patch`)); !errors.Is(err, ErrParse) {
		t.Errorf("bad patch: %v, want ErrParse", err)
	}
	if _, err := doc.ApplyPatch([]byte(`[{"op": "remove", "path": "/nope"}]`)); err == nil {
		t.Errorf("patch of absent path applied without error")
	}
}

func TestApplyMergePatch(t *testing.T) {
	doc, err := ParseString(`{"a": 1, "b": {"c": 2, "d": 3}}`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := doc.ApplyMergePatch([]byte(`{"b": {"c": null, "e": 4}}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := out.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get("c"); !errors.Is(err, ErrMissing) {
		t.Errorf("c not removed by merge patch")
	}
	if v, _ := GetAs[int](b, "e"); v != 4 {
		t.Errorf("e = %d, want 4", v)
	}
	if v, _ := GetAs[int](b, "d"); v != 3 {
		t.Errorf("d = %d, want 3", v)
	}
}
