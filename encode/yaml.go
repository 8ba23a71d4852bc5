package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jot-format/jot/ir"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ir.ToAny(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
