package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/vortex-format/go-vcfg/encode"
	"github.com/vortex-format/go-vcfg/format"
	"github.com/vortex-format/go-vcfg/parse"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='force colored tree output'"`
	Strict bool `cli:"name=strict desc='fail on malformed input'"`

	OutFormat *format.Format

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

func (cfg *MainConfig) fmtOpt(cc *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.Strict()}
	}
	return nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	fmat := format.TreeFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if !fmat.IsTree() {
		return res
	}
	if cfg.Color || (cfg.writingToStdout() && isatty.IsTerminal(os.Stdout.Fd())) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) writingToStdout() bool {
	return cfg.Out == "" || cfg.Out == "-"
}

type SectionsConfig struct {
	*MainConfig
	Sections *cli.Command
}

type GetConfig struct {
	*MainConfig
	S string `cli:"name=s desc='section name (default root)'"`

	Get *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expression filter over section, path, name, value, type'"`

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
