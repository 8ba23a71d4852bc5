package jot

import (
	"bytes"

	"github.com/jot-format/jot/encode"
	"github.com/jot-format/jot/parse"
)

// FromYAML parses YAML text into a document.
func FromYAML(d []byte) (*Object, error) {
	return Parse(d, parse.YAML())
}

// ToYAML renders the document as YAML.
func (o *Object) ToYAML() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(o.node, buf, encode.EncodeYAML(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
