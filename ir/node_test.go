package ir

import (
	"testing"
)

func TestAppendField(t *testing.T) {
	obj := Object()
	AppendField(obj, "a", FromInt(1))
	AppendField(obj, "b", FromString("z"))
	if len(obj.Fields) != 2 || len(obj.Values) != 2 {
		t.Fatalf("got %d fields, %d values", len(obj.Fields), len(obj.Values))
	}
	v := Get(obj, "b")
	if v == nil || v.String != "z" {
		t.Errorf("Get(b) = %v", v)
	}
	if v.Parent != obj || v.ParentIndex != 1 || v.ParentField != "b" {
		t.Errorf("bad back-links: %v %d %q", v.Parent, v.ParentIndex, v.ParentField)
	}
}

func TestGetFirstMatchWins(t *testing.T) {
	obj := Object()
	AppendField(obj, "a", FromInt(1))
	AppendField(obj, "a", FromInt(2))
	v := Get(obj, "a")
	if v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("Get(a) = %v, want first match 1", v)
	}
}

func TestSetFieldOverwrite(t *testing.T) {
	obj := Object()
	AppendField(obj, "a", FromInt(1))
	AppendField(obj, "b", FromInt(2))
	prev := SetField(obj, "a", FromString("x"))
	if prev == nil || prev.Int64 == nil || *prev.Int64 != 1 {
		t.Fatalf("prev = %v, want 1", prev)
	}
	if prev.Parent != nil {
		t.Errorf("previous value still linked")
	}
	if len(obj.Fields) != 2 {
		t.Errorf("got %d fields, want 2", len(obj.Fields))
	}
	if v := Get(obj, "a"); v == nil || v.String != "x" {
		t.Errorf("Get(a) = %v, want x", v)
	}
}

func TestSetFieldAppend(t *testing.T) {
	obj := Object()
	if prev := SetField(obj, "a", FromInt(1)); prev != nil {
		t.Fatalf("prev = %v, want nil", prev)
	}
	if v := Get(obj, "a"); v == nil || *v.Int64 != 1 {
		t.Errorf("Get(a) = %v, want 1", v)
	}
}

func TestDetachField(t *testing.T) {
	obj := Object()
	AppendField(obj, "a", FromInt(1))
	AppendField(obj, "b", FromInt(2))
	AppendField(obj, "c", FromInt(3))
	v := DetachField(obj, "b")
	if v == nil || *v.Int64 != 2 {
		t.Fatalf("detached %v, want 2", v)
	}
	if v.Parent != nil {
		t.Errorf("detached node still has a parent")
	}
	if Get(obj, "b") != nil {
		t.Errorf("b still present after detach")
	}
	c := Get(obj, "c")
	if c == nil || c.ParentIndex != 1 {
		t.Errorf("remaining values not reindexed: %v", c)
	}
	if DetachField(obj, "zzz") != nil {
		t.Errorf("detach of absent field returned a node")
	}
}

func TestDetachIndex(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	v := DetachIndex(arr, 0)
	if v == nil || *v.Int64 != 1 {
		t.Fatalf("detached %v, want 1", v)
	}
	if len(arr.Values) != 2 || arr.Values[0].ParentIndex != 0 {
		t.Errorf("array not reindexed")
	}
	if DetachIndex(arr, 5) != nil {
		t.Errorf("out of range detach returned a node")
	}
}

func TestCloneDetached(t *testing.T) {
	obj := Object()
	AppendField(obj, "a", FromSlice([]*Node{FromBool(true), Null()}))
	dup := obj.Clone()
	if !Equal(obj, dup) {
		t.Fatalf("clone not equal to original")
	}
	// mutating the clone must not touch the original
	SetField(dup, "a", FromInt(7))
	if Equal(obj, dup) {
		t.Errorf("clone shares state with original")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("fields not sorted: %s, %s", obj.Fields[0].String, obj.Fields[1].String)
	}
}

func TestRoot(t *testing.T) {
	obj := Object()
	inner := FromSlice([]*Node{FromInt(1)})
	AppendField(obj, "a", inner)
	if inner.Values[0].Root() != obj {
		t.Errorf("Root did not walk to the top")
	}
}

func TestVisit(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), FromSlice([]*Node{FromInt(2)})})
	count := 0
	err := arr.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b *Node
		want int
	}{
		{Null(), Null(), 0},
		{FromBool(false), FromBool(true), -1},
		{FromInt(1), FromInt(2), -1},
		{FromInt(2), FromInt(2), 0},
		{FromString("a"), FromString("b"), -1},
		{Null(), FromInt(0), -1},
		{FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1)}), 0},
	}
	for i, tc := range tests {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("%d: Compare = %d, want %d", i, got, tc.want)
		}
	}
}

func TestAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"s":   "str",
		"n":   3,
		"f":   2.5,
		"b":   true,
		"nil": nil,
		"arr": []any{1, 2},
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	out, ok := ToAny(node).(map[string]any)
	if !ok {
		t.Fatalf("ToAny: %T", ToAny(node))
	}
	if out["s"] != "str" || out["n"] != 3 || out["f"] != 2.5 || out["b"] != true {
		t.Errorf("round trip mismatch: %v", out)
	}
	if arr, ok := out["arr"].([]any); !ok || len(arr) != 2 {
		t.Errorf("arr round trip mismatch: %v", out["arr"])
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected error for struct input")
	}
}
