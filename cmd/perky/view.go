package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/perky-format/go-perky/encode"
	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := parseArg(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// parseArg reads one file argument, "-" meaning stdin.
func parseArg(cfg *MainConfig, file string) (*ir.Node, error) {
	if file == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		node, err := parse.Parse(string(d), append(cfg.parseOpts(), parse.Source("stdin"))...)
		if err != nil {
			return nil, err
		}
		return node, nil
	}
	return parse.ParseFile(file, cfg.parseOpts()...)
}
