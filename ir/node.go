package ir

import (
	"maps"
	"slices"
)

// Node is one element of the parse tree. Scalars carry their payload in
// String, Bool, Int64 or Float64; Number keeps the raw literal when one
// was parsed. Objects keep Fields and Values in insertion order, arrays
// keep Values only. Parent, ParentIndex and ParentField are back-links
// maintained by the structural primitives below.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns a fresh empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// Array returns a fresh empty array node.
func Array() *Node {
	return &Node{Type: ArrayType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		field := node.Fields[i]
		if field.Type == NullType {
			continue
		}
		res[field.String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value of the named field, or nil if there is none.
// With duplicate field names the first match wins.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the index of the first field named field, or -1.
func FieldIndex(y *Node, field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Append links v at the end of the array node y. The link carries no
// ownership beyond reachability; callers check y.Type first.
func Append(y, v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// AppendField links v under the named field at the end of the object
// node y. Existing fields with the same name are left in place; lookup
// takes the first match.
func AppendField(y *Node, field string, v *Node) {
	i := len(y.Values)
	yField := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
	y.Fields = append(y.Fields, yField)
	y.Values = append(y.Values, v)
}

// SetField links v under the named field in the object node y. An
// existing field keeps its position and its previous value is unlinked
// and returned; otherwise v is appended and the result is nil.
func SetField(y *Node, field string, v *Node) *Node {
	i := FieldIndex(y, field)
	if i == -1 {
		AppendField(y, field, v)
		return nil
	}
	prev := y.Values[i]
	prev.Parent = nil
	prev.ParentIndex = 0
	prev.ParentField = ""
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
	y.Values[i] = v
	return prev
}

// DetachIndex unlinks and returns the i'th value of the array node y,
// or nil if i is out of range. Remaining values are reindexed.
func DetachIndex(y *Node, i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	v := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	if len(y.Fields) > i {
		y.Fields = slices.Delete(y.Fields, i, i+1)
	}
	reindex(y)
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
	return v
}

// DetachField unlinks and returns the value of the first field named
// field in the object node y, or nil if there is none.
func DetachField(y *Node, field string) *Node {
	i := FieldIndex(y, field)
	if i == -1 {
		return nil
	}
	return DetachIndex(y, i)
}

func reindex(y *Node) {
	for i, v := range y.Values {
		v.ParentIndex = i
	}
	for i, f := range y.Fields {
		f.ParentIndex = i
	}
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
