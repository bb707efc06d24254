package token

import "strings"

// Line is one logical or physical source line.
type Line struct {
	// Text is the line content.  Next trims surrounding whitespace;
	// NextRaw leaves it verbatim (minus any trailing '\r').
	Text string
	Pos  Pos
}

// Scanner walks the physical lines of one source.  Next skips blank
// and '#' comment lines; NextRaw does not, which is what text block
// capture needs.  Both report exhaustion only through their ok result.
type Scanner struct {
	source string
	lines  []string
	i      int
}

func NewScanner(text, source string) *Scanner {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return &Scanner{source: source, lines: lines}
}

// Pos is the position of the most recently returned line, or of the
// scan start when nothing has been consumed.
func (s *Scanner) Pos() Pos {
	return Pos{Source: s.source, Line: s.i}
}

// Next returns the next non-blank, non-comment line with surrounding
// whitespace stripped.
func (s *Scanner) Next() (Line, bool) {
	for s.i < len(s.lines) {
		raw := s.lines[s.i]
		s.i++
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if text[0] == '#' {
			continue
		}
		return Line{Text: text, Pos: s.Pos()}, true
	}
	return Line{Pos: s.Pos()}, false
}

// NextRaw returns the next physical line verbatim, including blank
// lines and lines that look like comments.
func (s *Scanner) NextRaw() (Line, bool) {
	if s.i >= len(s.lines) {
		return Line{Pos: s.Pos()}, false
	}
	raw := s.lines[s.i]
	s.i++
	return Line{Text: raw, Pos: s.Pos()}, true
}
