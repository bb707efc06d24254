// Package perky reads and writes the perky configuration format: a
// line oriented format of `name = value` mappings, bare value
// sequences, nested `{`/`[` frames and triple-quoted text blocks.
//
// The package level functions cover the common cases.  ParseText and
// ParseFile produce an ir.Node tree; Serialize and SerializeToFile
// write one back out.  Pragma lines (`=include common.pky`) are
// resolved against a caller supplied pragma.Registry.
//
// Parsing is a pure function of its inputs plus whatever the
// registered pragma handlers read, so distinct parses may run
// concurrently.  Passing the same parse.Root node to two concurrent
// parses is not supported.  A single parse is sequential: includes
// re-enter the parser on the same goroutine, bounded by
// parse.MaxDepth; include cycles are not detected beyond that limit.
package perky

import (
	"os"

	"github.com/perky-format/go-perky/encode"
	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/parse"
)

// ParseText parses perky text into a mapping-rooted tree.
func ParseText(text string, opts ...parse.Option) (*ir.Node, error) {
	return parse.Parse(text, opts...)
}

// ParseFile parses the perky file at path.
func ParseFile(path string, opts ...parse.Option) (*ir.Node, error) {
	return parse.ParseFile(path, opts...)
}

// Serialize encodes node as perky text.
func Serialize(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.String(node, opts...)
}

// SerializeToFile encodes node to the file at path.
func SerializeToFile(node *ir.Node, path string, opts ...encode.EncodeOption) error {
	s, err := encode.String(node, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}
