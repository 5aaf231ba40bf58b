package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/keygrove/keygrove/encode"
	"github.com/keygrove/keygrove/mergeop"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := docArg(cc, args[0])
	if err != nil {
		return err
	}
	to, err := docArg(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.M {
		data, err := mergeop.MergeDiff(from, to)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", data)
		return err
	}
	// Text diff over the normalized renderings so formatting noise in
	// the inputs does not show up as changes.
	fromText, err := encode.String(from)
	if err != nil {
		return err
	}
	toText, err := encode.String(to)
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			err = writeLines(cc, "-", d.Text)
		case diffpatch.DiffInsert:
			err = writeLines(cc, "+", d.Text)
		case diffpatch.DiffEqual:
			err = writeLines(cc, " ", d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLines(cc *cli.Context, prefix, text string) error {
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		if _, err := fmt.Fprintf(cc.Out, "%s%s\n", prefix, line); err != nil {
			return err
		}
	}
	return nil
}
