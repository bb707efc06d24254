package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/perky-format/go-perky/encode"
	"github.com/perky-format/go-perky/parse"
	"github.com/perky-format/go-perky/pragma"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Indent   int  `cli:"name=indent desc='spaces per nesting level (default 4)'"`
	NoBlocks bool `cli:"name=noblocks desc='quote multi-line strings instead of text blocks'"`

	SearchPath []string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) registry() *pragma.Registry {
	return pragma.Builtin(cfg.SearchPath...)
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	return []parse.Option{
		parse.Pragmas(cfg.registry()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.TextBlocks(!cfg.NoBlocks),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
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

func (cfg *MainConfig) includeOpt(cc *cli.Context, a string) (any, error) {
	cfg.SearchPath = append(cfg.SearchPath, a)
	return nil, nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='no output, status only'"`
	Check *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	To   string `cli:"name=to desc='output format: perky, yaml, json'"`
	From string `cli:"name=from desc='input format: perky, yaml, json'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
