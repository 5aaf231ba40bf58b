package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := docArg(cc, file)
		if err != nil {
			return err
		}
		e, err := d.GetValue(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", e.Source()); err != nil {
			return err
		}
	}
	return nil
}
