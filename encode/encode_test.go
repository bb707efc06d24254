package encode

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/perky-format/go-perky/ir"
)

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func str(s string) *ir.Node {
	return ir.FromString(s)
}

type encodeTest struct {
	name string
	node *ir.Node
	opts []EncodeOption
	want string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "flat",
			node: ir.FromKeyVals([]ir.KeyVal{kv("a", str("1")), kv("b", str("two words"))}),
			want: "a = 1\nb = two words\n",
		},
		{
			name: "quoting",
			node: ir.FromKeyVals([]ir.KeyVal{
				kv("needs quote", str("")),
				kv("b", str(" padded ")),
				kv("c", str("x=y")),
			}),
			want: "needs quote = \"\"\nb = \" padded \"\nc = \"x=y\"\n",
		},
		{
			name: "nested",
			node: ir.FromKeyVals([]ir.KeyVal{
				kv("outer", ir.FromKeyVals([]ir.KeyVal{kv("x", str("1"))})),
			}),
			want: "outer = {\n    x = 1\n}\n",
		},
		{
			name: "sequence",
			node: ir.FromKeyVals([]ir.KeyVal{
				kv("items", ir.FromSlice([]*ir.Node{str("a"), str("b")})),
			}),
			want: "items = [\n    a\n    b\n]\n",
		},
		{
			name: "empty containers",
			node: ir.FromKeyVals([]ir.KeyVal{
				kv("m", ir.NewMapping()),
				kv("s", ir.NewSequence()),
			}),
			want: "m = {}\ns = []\n",
		},
		{
			name: "indent option",
			node: ir.FromKeyVals([]ir.KeyVal{
				kv("outer", ir.FromKeyVals([]ir.KeyVal{kv("x", str("1"))})),
			}),
			opts: []EncodeOption{Indent(2)},
			want: "outer = {\n  x = 1\n}\n",
		},
		{
			name: "text block",
			node: ir.FromKeyVals([]ir.KeyVal{kv("poem", str("line one\nline two"))}),
			want: "poem = \"\"\"\n    line one\n    line two\n    \"\"\"\n",
		},
		{
			name: "text block off",
			node: ir.FromKeyVals([]ir.KeyVal{kv("poem", str("a\nb"))}),
			opts: []EncodeOption{TextBlocks(false)},
			want: "poem = \"a\\nb\"\n",
		},
		{
			name: "sequence root",
			node: ir.FromSlice([]*ir.Node{
				str("a"),
				ir.FromKeyVals([]ir.KeyVal{kv("x", str("1"))}),
			}),
			want: "a\n{\n    x = 1\n}\n",
		},
	}
	for _, et := range ets {
		t.Run(et.name, func(t *testing.T) {
			got, err := String(et.node, et.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(et.want, got); d != "" {
				t.Errorf("output (-want +got):\n%s", d)
			}
		})
	}
}

func TestEncodeLeafRoot(t *testing.T) {
	if _, err := String(str("x")); err == nil {
		t.Error("no error for leaf root")
	}
}

func TestEncodeBadKeyType(t *testing.T) {
	m := ir.NewMapping()
	m.Set("ok", str("v"))
	m.Fields[0] = ir.NewSequence()
	_, err := String(m)
	if !errors.Is(err, ir.ErrKeyType) {
		t.Errorf("got %v", err)
	}
	// nested mappings are checked too
	outer := ir.NewMapping()
	outer.Set("inner", m)
	if _, err := String(outer); !errors.Is(err, ir.ErrKeyType) {
		t.Errorf("nested: got %v", err)
	}
}

func TestBlockMarker(t *testing.T) {
	if m, ok := blockMarker("a\nb"); !ok || m != `"""` {
		t.Errorf("got %q, %t", m, ok)
	}
	// a literal """ line forces the single marker
	if m, ok := blockMarker("a\n\"\"\"\nb"); !ok || m != "'''" {
		t.Errorf("got %q, %t", m, ok)
	}
	// both delimiters present: no marker works
	if _, ok := blockMarker("\"\"\"\n'''"); ok {
		t.Error("expected no usable marker")
	}
	// whitespace-only lines cannot round trip through a block
	if _, ok := blockMarker("a\n  \nb"); ok {
		t.Error("expected no marker with whitespace-only line")
	}
}

func TestEncodeColorsWrap(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{kv("a", str("1"))})
	got, err := String(node, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "a") || !strings.Contains(got, "1") {
		t.Errorf("content missing from %q", got)
	}
}
