// Package parse builds jot parse trees from JSON or YAML text. The
// grammar work is delegated: JSON decoding drives a json-iterator
// Iterator, YAML decoding goes through goccy/go-yaml.
package parse

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/jot-format/jot/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.yaml {
		return parseYAML(d)
	}
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, d)
	node := readValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("%w: %s", ir.ErrParse, iter.Error)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: no value", ir.ErrParse)
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, fmt.Errorf("%w: trailing data after value", ir.ErrParse)
	}
	return node, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func readValue(iter *jsoniter.Iterator) *ir.Node {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return ir.Null()
	case jsoniter.BoolValue:
		return ir.FromBool(iter.ReadBool())
	case jsoniter.StringValue:
		return ir.FromString(iter.ReadString())
	case jsoniter.NumberValue:
		return numberNode(iter)
	case jsoniter.ArrayValue:
		arr := ir.Array()
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			v := readValue(it)
			if v == nil {
				return false
			}
			ir.Append(arr, v)
			return true
		})
		return arr
	case jsoniter.ObjectValue:
		obj := ir.Object()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			v := readValue(it)
			if v == nil {
				return false
			}
			ir.AppendField(obj, field, v)
			return true
		})
		return obj
	default:
		iter.ReportError("readValue", "invalid value")
		return nil
	}
}

func numberNode(iter *jsoniter.Iterator) *ir.Node {
	num := iter.ReadNumber()
	node := &ir.Node{Type: ir.NumberType, Number: num.String()}
	if i, err := num.Int64(); err == nil {
		node.Int64 = &i
		return node
	}
	if f, err := num.Float64(); err == nil {
		node.Float64 = &f
	}
	return node
}
