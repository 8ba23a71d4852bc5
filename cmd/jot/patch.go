package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/jot"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	w := cfg.writer(cc)
	for _, file := range inputs(args[1:]) {
		obj, err := loadFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		var out *jot.Object
		if cfg.Merge {
			out, err = obj.ApplyMergePatch(pd)
		} else {
			out, err = obj.ApplyPatch(pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := out.Encode(w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
