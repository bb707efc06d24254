package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/perky-format/go-perky/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff expects two files", cli.ErrUsage)
	}
	canon := make([]string, 2)
	for i, file := range args {
		node, err := parseArg(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		// canonical text, uncolored, so the diff is over content
		s, err := encode.String(node, encode.TextBlocks(!cfg.NoBlocks))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		canon[i] = s
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(canon[0], canon[1], true)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return nil
	}
	if cfg.Color {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	patches := dmp.PatchMake(canon[0], canon[1])
	fmt.Fprint(cc.Out, dmp.PatchToText(patches))
	return nil
}
