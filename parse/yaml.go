package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jot-format/jot/ir"
)

// parseYAML decodes YAML via goccy/go-yaml and maps the result through
// ir.FromAny. Object field order follows sorted map keys, not source
// order.
func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %s", ir.ErrParse, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ir.ErrParse, err)
	}
	return node, nil
}
