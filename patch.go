package jot

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jot-format/jot/debug"
)

// ApplyPatch applies an RFC 6902 JSON patch to the document and
// returns the patched document. The receiver is not mutated.
func (o *Object) ApplyPatch(patch []byte) (*Object, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, &Error{Op: "patch", Message: err.Error(), Err: ErrParse}
	}
	d, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patching %s\n", d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return Parse(out)
}

// ApplyMergePatch applies an RFC 7386 merge patch to the document and
// returns the patched document. The receiver is not mutated.
func (o *Object) ApplyMergePatch(patch []byte) (*Object, error) {
	d, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	return Parse(out)
}
