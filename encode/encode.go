package encode

import (
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/jot-format/jot/ir"
)

type EncState struct {
	depth, indent int
	wire          bool
	yaml          bool

	Color func(ir.Type, ColorAttr, string) string

	stream *jsoniter.Stream
}

// Encode writes node to w as JSON. The default rendering is indented;
// EncodeWire selects the compact form. Scalar rendering (string
// escaping, number formatting) is delegated to a json-iterator stream.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.yaml {
		return encodeYAML(node, w)
	}
	es.stream = jsoniter.ConfigDefault.BorrowStream(w)
	defer jsoniter.ConfigDefault.ReturnStream(es.stream)
	encode(node, es)
	if !es.wire {
		es.stream.WriteRaw("\n")
	}
	if err := es.stream.Flush(); err != nil {
		return err
	}
	return es.stream.Error
}

func encode(node *ir.Node, es *EncState) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			es.emit(node.Type, SepColor, "{}")
			return
		}
		es.emit(node.Type, SepColor, "{")
		es.depth++
		for i := range node.Fields {
			if i > 0 {
				es.emit(node.Type, SepColor, ",")
			}
			es.newline()
			es.emit(node.Type, FieldColor, scalarText(ir.FromString(node.Fields[i].String)))
			es.emit(node.Type, SepColor, ":")
			if !es.wire {
				es.stream.WriteRaw(" ")
			}
			encode(node.Values[i], es)
		}
		es.depth--
		es.newline()
		es.emit(node.Type, SepColor, "}")
	case ir.ArrayType:
		if len(node.Values) == 0 {
			es.emit(node.Type, SepColor, "[]")
			return
		}
		es.emit(node.Type, SepColor, "[")
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				es.emit(node.Type, SepColor, ",")
			}
			es.newline()
			encode(v, es)
		}
		es.depth--
		es.newline()
		es.emit(node.Type, SepColor, "]")
	default:
		es.emit(node.Type, ValueColor, scalarText(node))
	}
}

// scalarText renders a leaf node to JSON text on a scratch stream so
// colorized output can wrap the finished token.
func scalarText(node *ir.Node) string {
	s := jsoniter.NewStream(jsoniter.ConfigDefault, nil, 64)
	switch node.Type {
	case ir.NullType:
		s.WriteNil()
	case ir.BoolType:
		s.WriteBool(node.Bool)
	case ir.StringType:
		s.WriteString(node.String)
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			s.WriteInt64(*node.Int64)
		case node.Float64 != nil:
			s.WriteFloat64(*node.Float64)
		default:
			s.WriteRaw(node.Number)
		}
	}
	return string(s.Buffer())
}

func (es *EncState) emit(t ir.Type, attr ColorAttr, text string) {
	if es.Color != nil {
		text = es.Color(t, attr, text)
	}
	es.stream.WriteRaw(text)
}

func (es *EncState) newline() {
	if es.wire {
		return
	}
	es.stream.WriteRaw("\n" + strings.Repeat(" ", es.depth*es.indent))
}
