package token

import (
	"fmt"
	"strconv"
)

// Pos locates a line in a named source.  Line numbers are 1-based.
type Pos struct {
	Source string
	Line   int
}

func (p Pos) String() string {
	if p.Source == "" {
		return "line " + strconv.Itoa(p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}
