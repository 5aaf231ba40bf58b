package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/keygrove/keygrove/eval"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	expr := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := docArg(cc, file)
		if err != nil {
			return err
		}
		res, err := eval.Query(d, expr)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, expr, err)
		}
		switch v := res.(type) {
		case string:
			_, err = fmt.Fprintf(cc.Out, "%s\n", v)
		default:
			var data []byte
			data, err = json.Marshal(v)
			if err == nil {
				_, err = fmt.Fprintf(cc.Out, "%s\n", data)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
