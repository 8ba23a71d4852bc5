package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/jot"
	"github.com/jot-format/jot/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	var val *jot.Object
	if !cfg.Del {
		if len(args) == 0 {
			return fmt.Errorf("%w: set requires a value", cli.ErrUsage)
		}
		val = parseValue(args[0])
		args = args[1:]
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: set takes at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	obj, err := loadFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if cfg.Del {
		err = deletePath(obj, path)
	} else {
		err = setPath(obj, path, val)
	}
	if err != nil {
		return fmt.Errorf("error updating %s at %s: %w", file, path, err)
	}
	w := cfg.writer(cc)
	return obj.Encode(w, cfg.encOpts(w)...)
}

// parseValue takes the value argument as JSON when it parses, and as a
// bare string otherwise, so both `set a.b 10` and `set a.b hello`
// behave as expected.
func parseValue(arg string) *jot.Object {
	if v, err := jot.ParseString(arg); err == nil {
		return v
	}
	return jot.MustFrom(arg)
}

func splitPath(path string) (string, string) {
	i := strings.LastIndexByte(path, '.')
	if i == -1 {
		return "", path
	}
	return path[:i], path[i+1:]
}

func setPath(obj *jot.Object, path string, val *jot.Object) error {
	prefix, last := splitPath(path)
	parent, err := obj.Lookup(prefix)
	if err != nil {
		return err
	}
	switch parent.Type() {
	case ir.ObjectType:
		return parent.Set(last, val)
	case ir.ArrayType:
		if last == "-" {
			return parent.Add(val)
		}
		return fmt.Errorf("cannot set index %q of an array, use - to append", last)
	default:
		return fmt.Errorf("cannot set %q on a %s", last, parent.Type())
	}
}

func deletePath(obj *jot.Object, path string) error {
	prefix, last := splitPath(path)
	parent, err := obj.Lookup(prefix)
	if err != nil {
		return err
	}
	switch parent.Type() {
	case ir.ArrayType:
		i, err := strconv.Atoi(last)
		if err != nil {
			return fmt.Errorf("non-numeric index %q", last)
		}
		_, err = parent.DeleteAt(i)
		return err
	default:
		_, err = parent.Delete(last)
		return err
	}
}
