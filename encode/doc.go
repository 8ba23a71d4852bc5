// Package encode renders jot parse trees to JSON or YAML text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// compact wire form
//	err := encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//
// # Related Packages
//
//   - github.com/jot-format/jot/ir - node representation
//   - github.com/jot-format/jot/parse - parse text to nodes
package encode
