package token

import (
	"errors"
	"testing"
)

type blockTest struct {
	in   string
	want string
	e    error
}

func TestTextBlock(t *testing.T) {
	bts := []blockTest{
		{
			in:   "    line one\n    line two\n    \"\"\"\n",
			want: "line one\nline two",
		},
		{
			in:   "    keeps  inner   spacing\n    \"\"\"\n",
			want: "keeps  inner   spacing",
		},
		{
			// deeper lines keep their extra indentation
			in:   "    a\n        b\n    \"\"\"\n",
			want: "a\n    b",
		},
		{
			// blank lines stay blank
			in:   "    a\n\n    b\n    \"\"\"\n",
			want: "a\n\nb",
		},
		{
			// comment-looking lines are content
			in:   "    # not a comment\n    \"\"\"\n",
			want: "# not a comment",
		},
		{
			// closing delimiter at column zero strips nothing
			in:   "  a\n\"\"\"\n",
			want: "  a",
		},
		{
			in: "  a\n    b\n   \"\"\"\n",
			e:  ErrOutdent,
		},
		{
			in: "    never closed\n",
			e:  ErrBlockEnd,
		},
	}
	for _, bt := range bts {
		sc := NewScanner(bt.in, "")
		got, err := sc.TextBlock(DoubleBlock, Pos{Line: 1})
		if bt.e != nil {
			if !errors.Is(err, bt.e) {
				t.Errorf("%q: error %v, want %v", bt.in, err, bt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", bt.in, err)
			continue
		}
		if got != bt.want {
			t.Errorf("%q: got %q, want %q", bt.in, got, bt.want)
		}
	}
}

func TestTextBlockSingleMarker(t *testing.T) {
	sc := NewScanner("  say \"\"\" freely\n  '''\n", "")
	got, err := sc.TextBlock(SingleBlock, Pos{Line: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got != "say \"\"\" freely" {
		t.Errorf("got %q", got)
	}
}
