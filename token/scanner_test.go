package token

import "testing"

func TestScannerSkipsBlankAndComments(t *testing.T) {
	sc := NewScanner("\n# header\n  a = 1\n\n   # indented comment\nb = 2\n", "test.pky")
	ln, ok := sc.Next()
	if !ok || ln.Text != "a = 1" {
		t.Fatalf("got %q, %t", ln.Text, ok)
	}
	if ln.Pos.Line != 3 {
		t.Errorf("line %d, want 3", ln.Pos.Line)
	}
	if ln.Pos.Source != "test.pky" {
		t.Errorf("source %q", ln.Pos.Source)
	}
	ln, ok = sc.Next()
	if !ok || ln.Text != "b = 2" {
		t.Fatalf("got %q, %t", ln.Text, ok)
	}
	if _, ok := sc.Next(); ok {
		t.Error("expected exhaustion")
	}
}

func TestScannerCRLF(t *testing.T) {
	sc := NewScanner("a = 1\r\nb = 2\r\n", "")
	ln, _ := sc.Next()
	if ln.Text != "a = 1" {
		t.Errorf("got %q", ln.Text)
	}
}

func TestScannerNextRaw(t *testing.T) {
	sc := NewScanner("  raw line\n\n# kept\n", "")
	want := []string{"  raw line", "", "# kept", ""}
	for i, w := range want {
		ln, ok := sc.NextRaw()
		if !ok {
			t.Fatalf("exhausted at %d", i)
		}
		if ln.Text != w {
			t.Errorf("line %d: %q, want %q", i, ln.Text, w)
		}
	}
	if _, ok := sc.NextRaw(); ok {
		t.Error("expected exhaustion")
	}
}

func TestPosString(t *testing.T) {
	if got := (Pos{Source: "x.pky", Line: 12}).String(); got != "x.pky:12" {
		t.Errorf("got %q", got)
	}
	if got := (Pos{Line: 3}).String(); got != "line 3" {
		t.Errorf("got %q", got)
	}
}
