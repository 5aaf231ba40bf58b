package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		})

	return cli.NewCommandAt(&cfg.Main, "kg").
		WithSynopsis("kg [opts] command [opts]").
		WithDescription("kg is a tool for working with keygrove configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kgMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			GetCommand(cfg),
			QueryCommand(cfg),
			MergeCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("parse configuration files and print them normalized").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <dotted.path> [files]").
		WithDescription("get a single value by its dotted full name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expression against configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge <base> <overlay> [overlay2 ...]").
		WithDescription("merge overlays onto a base file, last wins").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patch.json> [file]").
		WithDescription("apply an rfc 6902 patch to a configuration file").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff [-m] <from> <to>").
		WithDescription("compare two configuration files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
