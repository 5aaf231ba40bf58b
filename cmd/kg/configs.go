package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/keygrove/keygrove/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force color output'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	M    bool `cli:"name=m aliases=merge desc='output an rfc 7386 merge patch instead of a text diff'"`
	Diff *cli.Command
}
