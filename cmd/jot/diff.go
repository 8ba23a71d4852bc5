package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/jot"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d := jot.Diff(a, b)
	if d == "" {
		return nil
	}
	fmt.Fprint(cfg.writer(cc), d)
	return cli.ExitCodeErr(1)
}
