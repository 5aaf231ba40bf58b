package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/keygrove/keygrove/mergeop"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one overlay", cli.ErrUsage)
	}
	d, err := docArg(cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		overlay, err := docArg(cc, arg)
		if err != nil {
			return err
		}
		d, err = mergeop.Merge(d, overlay)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", arg, err)
		}
	}
	return writeDoc(cfg.MainConfig, cc.Out, d)
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchJSON, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	d, err := docArg(cc, file)
	if err != nil {
		return err
	}
	out, err := mergeop.Patch(d, patchJSON)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return writeDoc(cfg.MainConfig, cc.Out, out)
}

func readArg(cc *cli.Context, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(arg)
}
