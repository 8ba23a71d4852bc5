package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToAny converts a node to the equivalent Go value: objects become
// map[string]any, arrays []any, numbers int or float64, and null nil.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			field := node.Fields[i]
			if field.Type == NullType {
				continue
			}
			res[field.String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a Go value to a node. Maps and slices convert
// recursively; map keys are sorted to make the result deterministic.
// Nodes and collections of nodes pass through, cloned where needed so
// the result is a detached tree.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case []*Node:
		return FromSlice(t), nil
	case map[string]*Node:
		return FromMap(t), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromInt(int64(t)), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return FromInt(int64(t)), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := t.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return &Node{Type: NumberType, Number: t.String()}, nil
	case []any:
		vals := make([]*Node, len(t))
		for i, elt := range t {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(t))
		for key, elt := range t {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[key] = y
		}
		return FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}
