package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/perky-format/go-perky/ir"
)

func TestConvFormat(t *testing.T) {
	for _, v := range []string{"perky", "yaml", "json"} {
		got, err := convFormat(v, "perky")
		if err != nil || got != v {
			t.Errorf("%q: got %q, %v", v, got, err)
		}
	}
	if got, err := convFormat("", "yaml"); err != nil || got != "yaml" {
		t.Errorf("default: got %q, %v", got, err)
	}
	if _, err := convFormat("toml", "perky"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestReadWriteAs(t *testing.T) {
	cfg := &MainConfig{}
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.pky")
	if err := os.WriteFile(path, []byte("a = 1\nb = {\n    c = 2\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	node, err := readAs(cfg, path, "perky")
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "a"); v == nil || v.String != "1" {
		t.Errorf("a = %v", v)
	}
	for _, format := range []string{"perky", "yaml", "json"} {
		buf := bytes.NewBuffer(nil)
		if err := writeAs(cfg, buf, node, format); err != nil {
			t.Errorf("%s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: empty output", format)
		}
	}
}

func TestConvertYAMLRoundTrip(t *testing.T) {
	cfg := &MainConfig{}
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	if err := os.WriteFile(path, []byte("name: api\nhosts:\n  - alpha\n  - beta\n"), 0644); err != nil {
		t.Fatal(err)
	}
	node, err := readAs(cfg, path, "yaml")
	if err != nil {
		t.Fatal(err)
	}
	hosts := ir.Get(node, "hosts")
	if hosts == nil || len(hosts.Values) != 2 || hosts.Values[1].String != "beta" {
		t.Errorf("hosts = %v", ir.ToAny(node))
	}
}
