package main

import (
	"io"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return dumpFiles(cfg, cc, cc.Out, args)
}

func dumpFiles(cfg *DumpConfig, cc *cli.Context, w io.Writer, files []string) error {
	for i, file := range files {
		d, err := docArg(cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, w, d); err != nil {
			return err
		}
	}
	return nil
}
