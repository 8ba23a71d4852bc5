package jot

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jot-format/jot/debug"
	"github.com/jot-format/jot/ir"
)

// Diff returns a character-level diff of the pretty-printed forms of a
// and b, with terminal colors marking insertions and deletions. Equal
// documents yield "".
func Diff(a, b *Object) string {
	if ir.Equal(a.node, b.node) {
		return ""
	}
	if debug.Diff() {
		debug.Logf("diffing %s and %s\n", a.JSON(), b.JSON())
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a.String()+"\n", b.String()+"\n", false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
