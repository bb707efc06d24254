package token

import "strings"

// TextBlock consumes the body of a triple-quoted string opened by a
// bare marker line.  Physical lines, blank lines and lines that look
// like comments included, are captured verbatim until a line whose
// trimmed content equals the marker.  The closing line's own
// indentation is the dedent prefix: every non-blank captured line
// must start with it, and it is stripped from all of them.
func (s *Scanner) TextBlock(marker string, open Pos) (string, error) {
	var (
		captured []Line
		closing  string
	)
	for {
		ln, ok := s.NextRaw()
		if !ok {
			return "", NewErr(ErrBlockEnd, open)
		}
		if strings.TrimSpace(ln.Text) == marker {
			closing = ln.Text
			break
		}
		captured = append(captured, ln)
	}
	prefix := closing[:strings.Index(closing, marker)]
	lines := make([]string, len(captured))
	for i, ln := range captured {
		if strings.TrimSpace(ln.Text) == "" {
			lines[i] = ""
			continue
		}
		if !strings.HasPrefix(ln.Text, prefix) {
			return "", NewErr(ErrOutdent, ln.Pos)
		}
		lines[i] = ln.Text[len(prefix):]
	}
	return strings.Join(lines, "\n"), nil
}
