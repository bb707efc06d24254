package parse

import (
	"os"

	"github.com/perky-format/go-perky/ir"
)

// ParseFile reads and parses path.  The file name becomes the Source
// for positions unless an explicit Source option follows.
func ParseFile(path string, opts ...Option) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(d), append([]Option{Source(path)}, opts...)...)
}
