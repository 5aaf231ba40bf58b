package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/keygrove/keygrove/doc"
	"github.com/keygrove/keygrove/encode"
	"github.com/keygrove/keygrove/parse"
)

func kgMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// docArg parses one input argument; "-" means stdin.
func docArg(cc *cli.Context, arg string) (*doc.Document, error) {
	if arg == "-" {
		d, err := parse.ParseReader(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error parsing stdin: %w", err)
		}
		return d, nil
	}
	d, err := parse.ParseFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return d, nil
}

// writeDoc prints d in the selected output form: the native grammar by
// default, json with -j, yaml with -y.
func writeDoc(cfg *MainConfig, w io.Writer, d *doc.Document) error {
	switch {
	case cfg.J:
		data, err := json.MarshalIndent(doc.ToAny(d), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case cfg.Y:
		data, err := yaml.Marshal(doc.ToAny(d))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return encode.Encode(d, w, cfg.encOpts(w)...)
	}
}
