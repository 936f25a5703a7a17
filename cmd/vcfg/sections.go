package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func sections(cfg *SectionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sections.Parse(cc, args)
	if err != nil {
		cfg.Sections.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		doc, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		for _, sec := range doc.Sections {
			name := sec.Name
			if name == "" {
				name = "(root)"
			}
			fmt.Fprintf(cc.Out, "%s\t%d keys\n", name, len(sec.Keys))
		}
	}
	return nil
}
