package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var firstErr error
	for _, file := range args {
		_, err := parseArg(cfg.MainConfig, file)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	return firstErr
}
