package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/vortex-format/go-vcfg/ir"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var program *vm.Program
	if cfg.Where != "" {
		program, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range fileArgs(args) {
		doc, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := listDoc(cc, doc, program); err != nil {
			return err
		}
	}
	return nil
}

func listDoc(cc *cli.Context, doc *ir.Document, program *vm.Program) error {
	for _, sec := range doc.Sections {
		for _, k := range sec.Keys {
			if err := listKey(cc, sec.Name, nil, k, program); err != nil {
				return err
			}
		}
	}
	return nil
}

func listKey(cc *cli.Context, section string, parents []string, k *ir.Key, program *vm.Program) error {
	names := append(append([]string{}, parents...), k.Name)
	path := ir.Path(names...)
	value, _ := k.Value()
	keep := true
	if program != nil {
		out, err := expr.Run(program, map[string]any{
			"section": section,
			"path":    path,
			"name":    k.Name,
			"value":   value,
			"type":    k.Type.String(),
		})
		if err != nil {
			return fmt.Errorf("error evaluating -where for %s: %w", path, err)
		}
		b, ok := out.(bool)
		keep = ok && b
	}
	if keep {
		prefix := section
		if prefix != "" {
			prefix = "[" + prefix + "]"
		}
		fmt.Fprintf(cc.Out, "%s%s = %s\n", prefix, path, value)
	}
	for _, c := range k.Children {
		if err := listKey(cc, section, names, c, program); err != nil {
			return err
		}
	}
	return nil
}
