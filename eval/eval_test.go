package eval

import (
	"testing"

	"github.com/jot-format/jot"
)

func mustParse(t *testing.T, s string) *jot.Object {
	t.Helper()
	obj, err := jot.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestEval(t *testing.T) {
	doc := mustParse(t, `{"intval": 1234, "elems": [1, 2, 3, 4], "name": "alice"}`)
	tests := []struct {
		src  string
		want string
	}{
		{`doc.intval + 1`, `1235`},
		{`doc.elems[0] * 2`, `2`},
		{`len(doc.elems)`, `4`},
		{`doc.name + "!"`, `"alice!"`},
		{`map(doc.elems, # * 10)`, `[10,20,30,40]`},
		{`getpath("elems.2")`, `3`},
		{`typeof("name")`, `"String"`},
		{`haspath("elems.9")`, `false`},
		{`haspath("intval")`, `true`},
	}
	for _, tc := range tests {
		res, err := Eval(doc, tc.src)
		if err != nil {
			t.Errorf("%s: %s", tc.src, err)
			continue
		}
		if got := string(res.JSON()); got != tc.want {
			t.Errorf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	if _, err := Eval(doc, `1 +`); err == nil {
		t.Errorf("bad expression compiled")
	}
	if _, err := Eval(doc, `getpath("a.b.c")`); err == nil {
		t.Errorf("getpath of absent path succeeded")
	}
	if _, err := Eval(doc, `getpath(1)`); err == nil {
		t.Errorf("getpath with non-string succeeded")
	}
}
