package jot

import (
	"strconv"

	"github.com/jot-format/jot/ir"
)

// As extracts the value of o as T. Supported instantiations are bool,
// int, int64, float64, string and *Object; the node's tag must match
// the requested type or As fails with ErrType. Integer extraction of a
// float-valued number truncates toward zero. As[*Object] is identity
// and shares the underlying node.
func As[T any](o *Object) (T, error) {
	var zero T
	v, err := asAny(o, any(zero))
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func asAny(o *Object, sample any) (any, error) {
	node := o.node
	switch sample.(type) {
	case bool:
		if node.Type != ir.BoolType {
			return nil, typeErr("as", ir.BoolType, node.Type)
		}
		return node.Bool, nil
	case string:
		if node.Type != ir.StringType {
			return nil, typeErr("as", ir.StringType, node.Type)
		}
		return node.String, nil
	case int:
		i, err := intValue(node)
		return int(i), err
	case int64:
		return intValue(node)
	case float64:
		return floatValue(node)
	case *Object:
		return &Object{node: node}, nil
	default:
		return nil, &Error{Op: "as", Message: "unsupported target type", Err: ErrType}
	}
}

func intValue(node *ir.Node) (int64, error) {
	if node.Type != ir.NumberType {
		return 0, typeErr("as", ir.NumberType, node.Type)
	}
	switch {
	case node.Int64 != nil:
		return *node.Int64, nil
	case node.Float64 != nil:
		return int64(*node.Float64), nil
	}
	f, err := strconv.ParseFloat(node.Number, 64)
	if err != nil {
		return 0, &Error{Op: "as", Message: "unrepresentable number " + node.Number, Err: ErrType}
	}
	return int64(f), nil
}

func floatValue(node *ir.Node) (float64, error) {
	if node.Type != ir.NumberType {
		return 0, typeErr("as", ir.NumberType, node.Type)
	}
	switch {
	case node.Float64 != nil:
		return *node.Float64, nil
	case node.Int64 != nil:
		return float64(*node.Int64), nil
	}
	f, err := strconv.ParseFloat(node.Number, 64)
	if err != nil {
		return 0, &Error{Op: "as", Message: "unrepresentable number " + node.Number, Err: ErrType}
	}
	return f, nil
}

// AsArray extracts every element of an array as T, in index order. It
// fails on the first element whose tag does not match, returning no
// partial result.
func AsArray[T any](o *Object) ([]T, error) {
	if o.node.Type != ir.ArrayType {
		return nil, typeErr("asArray", ir.ArrayType, o.node.Type)
	}
	res := make([]T, len(o.node.Values))
	for i, v := range o.node.Values {
		x, err := As[T](&Object{node: v})
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

func (o *Object) AsBool() (bool, error) {
	return As[bool](o)
}

func (o *Object) AsInt() (int, error) {
	return As[int](o)
}

func (o *Object) AsInt64() (int64, error) {
	return As[int64](o)
}

func (o *Object) AsFloat() (float64, error) {
	return As[float64](o)
}

func (o *Object) AsString() (string, error) {
	return As[string](o)
}

// GetAs is shorthand for Get followed by As.
func GetAs[T any](o *Object, name string) (T, error) {
	var zero T
	item, err := o.Get(name)
	if err != nil {
		return zero, err
	}
	return As[T](item)
}
