package token

import "testing"

type needsQuoteTest struct {
	in   string
	need bool
}

func TestNeedsQuote(t *testing.T) {
	nts := []needsQuoteTest{
		{in: "hello", need: false},
		{in: "hello world", need: false},
		{in: "", need: true},
		{in: " padded ", need: true},
		{in: "#comment", need: true},
		{in: "=pragma", need: true},
		{in: "a=b", need: true},
		{in: "a{b", need: true},
		{in: "a]b", need: true},
		{in: "it's", need: true},
		{in: "two\nlines", need: true},
		{in: "tab\there", need: true},
		{in: "x # y", need: false},
	}
	for _, nt := range nts {
		if got := NeedsQuote(nt.in); got != nt.need {
			t.Errorf("NeedsQuote(%q) = %t, want %t", nt.in, got, nt.need)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	vals := []string{
		"",
		"hello",
		"it's",
		`say "hi"`,
		`both ' and "`,
		"two\nlines",
		"tab\there",
		"back\\slash",
		"bell",
		"café",
	}
	for _, v := range vals {
		for _, autoSingle := range []bool{false, true} {
			q := Quote(v, autoSingle)
			got, err := Unquote(q)
			if err != nil {
				t.Errorf("Unquote(Quote(%q, %t)) = %v", v, autoSingle, err)
				continue
			}
			if got != v {
				t.Errorf("Quote(%q, %t) round tripped to %q via %q", v, autoSingle, got, q)
			}
		}
	}
}

func TestQuoteAutoSingle(t *testing.T) {
	q := Quote(`say "hi"`, true)
	if q[0] != '\'' {
		t.Errorf("expected single quoting, got %q", q)
	}
	q = Quote("it's", true)
	if q[0] != '"' {
		t.Errorf("expected double quoting, got %q", q)
	}
}

func TestUnquoteErrs(t *testing.T) {
	for _, in := range []string{
		`"open`,
		`"bad \q escape"`,
		`"bad \u00zz unicode"`,
		`"trailing" x`,
	} {
		if _, err := Unquote(in); err == nil {
			t.Errorf("Unquote(%q): no error", in)
		}
	}
}
