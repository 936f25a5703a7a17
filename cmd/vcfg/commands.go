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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: tree, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "vcfg").
		WithSynopsis("vcfg [opts] command [opts]").
		WithDescription("vcfg is a tool for inspecting vcfg configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vcfgMain(cfg, cc, args)
		}).
		WithSubs(
			SectionsCommand(cfg),
			GetCommand(cfg),
			DumpCommand(cfg),
			ListCommand(cfg),
			DiffCommand(cfg))
}

func SectionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SectionsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sections, "sections").
		WithAliases("s", "sec").
		WithSynopsis("sections [files]").
		WithDescription("list the section names of configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return sections(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get [-s section] <keypath> [files]").
		WithDescription("get key values from configuration files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d", "view").
		WithSynopsis("dump [files]").
		WithDescription("dump parsed configuration as a tree, json, or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list [-where expr] [files]").
		WithDescription("list all keys, optionally filtered by an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the parsed content of two configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
