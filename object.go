package jot

import (
	"bytes"
	"io"

	"github.com/jot-format/jot/encode"
	"github.com/jot-format/jot/ir"
	"github.com/jot-format/jot/parse"
)

// Object is a typed wrapper around one node of a parse tree. Objects
// produced by navigation share nodes with their root: mutation through
// one wrapper is visible through every other wrapper on the same tree,
// and any wrapper keeps the whole tree reachable.
type Object struct {
	node *ir.Node
}

// New returns an empty mapping.
func New() *Object {
	return &Object{node: ir.Object()}
}

// Array returns an empty array.
func Array() *Object {
	return &Object{node: ir.Array()}
}

// Null returns a null value.
func Null() *Object {
	return &Object{node: ir.Null()}
}

// Wrap wraps an existing node without copying it.
func Wrap(node *ir.Node) *Object {
	return &Object{node: node}
}

// From converts a Go value to an Object. Supported inputs are the
// scalar kinds, []any, map[string]any, ir nodes and Objects.
func From(v any) (*Object, error) {
	node, err := adopt(v)
	if err != nil {
		return nil, err
	}
	return &Object{node: node}, nil
}

func MustFrom(v any) *Object {
	o, err := From(v)
	if err != nil {
		panic(err)
	}
	return o
}

// FromValues builds an array from a homogeneous sequence of values.
func FromValues[T any](vals ...T) (*Object, error) {
	arr := Array()
	for _, v := range vals {
		if err := arr.Add(v); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

// Parse parses JSON text into an owned tree.
func Parse(d []byte, opts ...parse.ParseOption) (*Object, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Object{node: node}, nil
}

func ParseString(s string, opts ...parse.ParseOption) (*Object, error) {
	return Parse([]byte(s), opts...)
}

// Node returns the underlying tree node.
func (o *Object) Node() *ir.Node {
	return o.node
}

// Type returns the live tag of the underlying node.
func (o *Object) Type() ir.Type {
	return o.node.Type
}

// Len returns the number of elements of an array or fields of a
// mapping, and 0 for scalars.
func (o *Object) Len() int {
	return len(o.node.Values)
}

// Keys returns the field names of a mapping in insertion order.
func (o *Object) Keys() []string {
	if o.node.Type != ir.ObjectType {
		return nil
	}
	keys := make([]string, len(o.node.Fields))
	for i, f := range o.node.Fields {
		keys[i] = f.String
	}
	return keys
}

// Get returns a view onto the named field. With duplicate field names
// the first match wins.
func (o *Object) Get(name string) (*Object, error) {
	if o.node.Type != ir.ObjectType {
		return nil, typeErr("get", ir.ObjectType, o.node.Type)
	}
	item := ir.Get(o.node, name)
	if item == nil {
		return nil, missingErr("get", "no field "+name)
	}
	return &Object{node: item}, nil
}

// At returns a view onto the i'th element of an array.
func (o *Object) At(i int) (*Object, error) {
	if o.node.Type != ir.ArrayType {
		return nil, typeErr("at", ir.ArrayType, o.node.Type)
	}
	if i < 0 || i >= len(o.node.Values) {
		return nil, missingErr("at", "index out of range")
	}
	return &Object{node: o.node.Values[i]}, nil
}

// Add appends a value to an array. The receiver's tag is checked
// before anything is linked, so a failed Add leaves it unchanged.
func (o *Object) Add(v any) error {
	if o.node.Type != ir.ArrayType {
		return typeErr("add", ir.ArrayType, o.node.Type)
	}
	child, err := adopt(v)
	if err != nil {
		return err
	}
	ir.Append(o.node, child)
	return nil
}

// Set links a value under the named field of a mapping. Overwriting an
// existing field unlinks the previous value deterministically; a
// wrapper still holding the previous value keeps it alive as a
// detached subtree.
func (o *Object) Set(name string, v any) error {
	if o.node.Type != ir.ObjectType {
		return typeErr("set", ir.ObjectType, o.node.Type)
	}
	child, err := adopt(v)
	if err != nil {
		return err
	}
	ir.SetField(o.node, name, child)
	return nil
}

// Delete detaches the named field and returns the orphaned subtree.
func (o *Object) Delete(name string) (*Object, error) {
	if o.node.Type != ir.ObjectType {
		return nil, typeErr("delete", ir.ObjectType, o.node.Type)
	}
	item := ir.DetachField(o.node, name)
	if item == nil {
		return nil, missingErr("delete", "no field "+name)
	}
	return &Object{node: item}, nil
}

// DeleteAt detaches the i'th element of an array and returns it.
func (o *Object) DeleteAt(i int) (*Object, error) {
	if o.node.Type != ir.ArrayType {
		return nil, typeErr("delete", ir.ArrayType, o.node.Type)
	}
	item := ir.DetachIndex(o.node, i)
	if item == nil {
		return nil, missingErr("delete", "index out of range")
	}
	return &Object{node: item}, nil
}

// Clone returns a deep copy with its own detached tree.
func (o *Object) Clone() *Object {
	node := o.node.Clone()
	node.Parent = nil
	node.ParentIndex = 0
	node.ParentField = ""
	return &Object{node: node}
}

// GoValue converts the subtree to plain Go values.
func (o *Object) GoValue() any {
	return ir.ToAny(o.node)
}

// Encode writes the subtree rooted at o to w.
func (o *Object) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(o.node, w, opts...)
}

// JSON returns the compact rendering of the subtree.
func (o *Object) JSON() []byte {
	return []byte(encode.MustString(o.node, encode.EncodeWire(true)))
}

// String returns the indented rendering of the subtree.
func (o *Object) String() string {
	return encode.MustString(o.node)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(o.node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) UnmarshalJSON(d []byte) error {
	node, err := parse.Parse(d)
	if err != nil {
		return err
	}
	o.node = node
	return nil
}

// adopt converts a value to a node ready for linking. An Object whose
// node is already attached elsewhere contributes a detached clone so a
// node never has two parents; a free-standing Object is shared.
func adopt(v any) (*ir.Node, error) {
	if co, ok := v.(*Object); ok {
		if co.node.Parent != nil {
			c := co.node.Clone()
			c.Parent = nil
			c.ParentIndex = 0
			c.ParentField = ""
			return c, nil
		}
		return co.node, nil
	}
	if n, ok := v.(*ir.Node); ok {
		if n.Parent != nil {
			c := n.Clone()
			c.Parent = nil
			c.ParentIndex = 0
			c.ParentField = ""
			return c, nil
		}
		return n, nil
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, &Error{Op: "convert", Message: err.Error(), Err: ErrType}
	}
	return node, nil
}
