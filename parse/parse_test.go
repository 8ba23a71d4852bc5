package parse

import (
	"errors"
	"testing"

	"github.com/jot-format/jot/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `null`,
		},
		{
			in: `true`,
		},
		{
			in: `false`,
		},
		{
			in: `22`,
		},
		{
			in: `1e14`,
		},
		{
			in: `-2.5`,
		},
		{
			in: `"hello"`,
		},
		{
			in: `""`,
		},
		{
			in: `[]`,
		},
		{
			in: `[1,2]`,
		},
		{
			in: `[[]]`,
		},
		{
			in: `[1,[2,[3]]]`,
		},
		{
			in: `{}`,
		},
		{
			in: `{"a": 1}`,
		},
		{
			in: `{"a": {"b": [1, "c", null]}}`,
		},
		{
			in: "\n\t {\"a\": 1} \n",
		},
	}
	for _, pt := range pts {
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %s", pt.in, err)
			continue
		}
		if node == nil {
			t.Errorf("%q: no node", pt.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ir.ErrParse},
		{in: `This is not valid JSON.`, e: ir.ErrParse},
		{in: `{`, e: ir.ErrParse},
		{in: `{"a": }`, e: ir.ErrParse},
		{in: `[1,]`, e: ir.ErrParse},
		{in: `"unterminated`, e: ir.ErrParse},
		{in: `1 2`, e: ir.ErrParse},
		{in: `{} trailing`, e: ir.ErrParse},
	}
	for _, pt := range pts {
		node, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: no error, got node %v", pt.in, node)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: error %v does not match %v", pt.in, err, pt.e)
		}
		if node != nil {
			t.Errorf("%q: error and node both returned", pt.in)
		}
	}
}

func TestParseTypes(t *testing.T) {
	node, err := Parse([]byte(`{"b": true, "n": null, "s": "x", "i": 3, "f": 2.5, "a": [], "o": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	wants := map[string]ir.Type{
		"b": ir.BoolType,
		"n": ir.NullType,
		"s": ir.StringType,
		"i": ir.NumberType,
		"f": ir.NumberType,
		"a": ir.ArrayType,
		"o": ir.ObjectType,
	}
	for field, want := range wants {
		v := ir.Get(node, field)
		if v == nil {
			t.Errorf("missing field %s", field)
			continue
		}
		if v.Type != want {
			t.Errorf("%s: type %s, want %s", field, v.Type, want)
		}
	}
	i := ir.Get(node, "i")
	if i.Int64 == nil || *i.Int64 != 3 {
		t.Errorf("i = %v, want int 3", i)
	}
	f := ir.Get(node, "f")
	if f.Float64 == nil || *f.Float64 != 2.5 {
		t.Errorf("f = %v, want float 2.5", f)
	}
}

func TestParseFieldOrder(t *testing.T) {
	node, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, w := range want {
		if node.Fields[i].String != w {
			t.Errorf("field %d = %q, want %q", i, node.Fields[i].String, w)
		}
	}
}

func TestParseYAML(t *testing.T) {
	node, err := Parse([]byte("a: 1\nb:\n  - x\n  - y\n"), YAML())
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("type %s, want Object", node.Type)
	}
	b := ir.Get(node, "b")
	if b == nil || b.Type != ir.ArrayType || len(b.Values) != 2 {
		t.Errorf("b = %v, want 2-element array", b)
	}
	if _, err := Parse([]byte(": : :"), YAML()); err == nil {
		t.Errorf("bad yaml parsed without error")
	}
}
