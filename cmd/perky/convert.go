package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/perky-format/go-perky/encode"
	"github.com/perky-format/go-perky/ir"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	from, err := convFormat(cfg.From, "perky")
	if err != nil {
		return err
	}
	to, err := convFormat(cfg.To, "yaml")
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := readAs(cfg.MainConfig, file, from)
		if err != nil {
			return err
		}
		if err := writeAs(cfg.MainConfig, cc.Out, node, to); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

func convFormat(v, dflt string) (string, error) {
	switch v {
	case "":
		return dflt, nil
	case "perky", "yaml", "json":
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", cli.ErrUsage, v)
}

func readAs(cfg *MainConfig, file, format string) (*ir.Node, error) {
	if format == "perky" {
		return parseArg(cfg, file)
	}
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(os.Stdin)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	var v any
	switch format {
	case "yaml":
		err = yaml.Unmarshal(d, &v)
	case "json":
		err = json.Unmarshal(d, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return ir.FromAny(v)
}

func writeAs(cfg *MainConfig, w io.Writer, node *ir.Node, format string) error {
	switch format {
	case "perky":
		return encode.Encode(node, w, cfg.encOpts(w)...)
	case "yaml":
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case "json":
		d, err := json.MarshalIndent(ir.ToAny(node), "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
	return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, format)
}
