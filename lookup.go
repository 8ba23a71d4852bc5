package jot

import (
	"strconv"
	"strings"

	"github.com/jot-format/jot/ir"
)

// Lookup navigates a dotted path such as "a.b.0", taking each segment
// as a field name on mappings and as an index on arrays, and returns a
// view onto the result.
func (o *Object) Lookup(path string) (*Object, error) {
	cur := o
	if path == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(path, ".") {
		switch cur.node.Type {
		case ir.ObjectType:
			next, err := cur.Get(seg)
			if err != nil {
				return nil, err
			}
			cur = next
		case ir.ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, missingErr("lookup", "non-numeric index "+seg)
			}
			next, err := cur.At(i)
			if err != nil {
				return nil, err
			}
			cur = next
		default:
			return nil, typeErr("lookup", ir.ObjectType, cur.node.Type)
		}
	}
	return cur, nil
}
