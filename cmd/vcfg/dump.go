package main

import (
	"github.com/scott-cotton/cli"

	"github.com/vortex-format/go-vcfg/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		doc, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts()...); err != nil {
			return err
		}
	}
	return nil
}
