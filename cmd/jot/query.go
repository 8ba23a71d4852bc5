package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/jot/eval"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	w := cfg.writer(cc)
	for _, file := range inputs(args[1:]) {
		obj, err := loadFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := eval.Eval(obj, src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if err := res.Encode(w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
