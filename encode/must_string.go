package encode

import "github.com/perky-format/go-perky/ir"

// MustString encodes node, panicking on error.  Handy in tests and
// debug output where the node is known to be a container.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
