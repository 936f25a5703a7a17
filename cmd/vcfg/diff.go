package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/vortex-format/go-vcfg/encode"
	"github.com/vortex-format/go-vcfg/format"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	a, err := canonical(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := canonical(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return cli.ExitCodeErr(1)
}

// canonical parses a file and renders it as JSON so the diff compares
// parsed content rather than layout or comments.
func canonical(cfg *MainConfig, arg string) (string, error) {
	doc, err := parseArg(cfg, arg)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
