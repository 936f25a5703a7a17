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
		return fmt.Errorf("%w: get requires one argument, a dotted key path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	misses := 0
	for _, arg := range fileArgs(args) {
		doc, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		k := doc.Lookup(cfg.S, path)
		if k == nil {
			misses++
			continue
		}
		v, ok := k.Value()
		if !ok {
			v = "<unset>"
		}
		fmt.Fprintf(cc.Out, "%s\n", v)
	}
	if misses > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
