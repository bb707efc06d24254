package perky

import (
	"path/filepath"
	"testing"

	"github.com/perky-format/go-perky/encode"
	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/parse"
	"github.com/perky-format/go-perky/pragma"
)

const exampleDoc = `
# example config

name = api gateway
port = 8080

limits = {
    cpu = 2
    memory = 512Mi
}

hosts = [
    alpha
    beta
]

motd = """
    Welcome!
    Be kind.
    """
`

func TestRoundTrip(t *testing.T) {
	node, err := ParseText(exampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Serialize(node)
	if err != nil {
		t.Fatal(err)
	}
	again, err := ParseText(out)
	if err != nil {
		t.Fatalf("reparse: %v\noutput:\n%s", err, out)
	}
	if !ir.Equal(node, again) {
		t.Errorf("round trip changed the tree:\n%s", out)
	}
}

func TestSerializeIdempotent(t *testing.T) {
	node, err := ParseText(exampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	once, err := Serialize(node)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := ParseText(once)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Serialize(reparsed)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("not idempotent:\n%s\nvs\n%s", once, twice)
	}
}

func TestFileRoundTrip(t *testing.T) {
	node, err := ParseText("a = 1\nb = {\n    c = 2\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.pky")
	if err := SerializeToFile(node, path); err != nil {
		t.Fatal(err)
	}
	again, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, again) {
		t.Error("file round trip changed the tree")
	}
}

func TestParseWithPragmas(t *testing.T) {
	t.Setenv("PERKY_ROOT_TEST", "from env")
	node, err := ParseText("=osenv PERKY_ROOT_TEST\n",
		parse.Pragmas(pragma.NewRegistry(pragma.NewOSEnv())))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "PERKY_ROOT_TEST"); v == nil || v.String != "from env" {
		t.Errorf("got %v", v)
	}
}

func TestSerializeOptions(t *testing.T) {
	node, err := ParseText("m = {\n    x = 1\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Serialize(node, encode.Indent(2))
	if err != nil {
		t.Fatal(err)
	}
	if out != "m = {\n  x = 1\n}\n" {
		t.Errorf("got %q", out)
	}
}
