package parse

import (
	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/pragma"
)

// DefaultMaxDepth bounds include nesting.
const DefaultMaxDepth = 100

type parseOpts struct {
	source   string
	pragmas  *pragma.Registry
	root     *ir.Node
	maxDepth int
}

// Option configures a call to Parse.
type Option func(*parseOpts)

// Source names the input in positions and error messages.
func Source(name string) Option {
	return func(o *parseOpts) {
		o.source = name
	}
}

// Pragmas supplies the handler registry.  Without it, any pragma line
// is an undefined-pragma error.
func Pragmas(r *pragma.Registry) Option {
	return func(o *parseOpts) {
		o.pragmas = r
	}
}

// Root parses into the given container instead of a fresh mapping.  A
// sequence root accepts bare-value documents.
func Root(root *ir.Node) Option {
	return func(o *parseOpts) {
		o.root = root
	}
}

// MaxDepth overrides DefaultMaxDepth for nested includes.
func MaxDepth(n int) Option {
	return func(o *parseOpts) {
		o.maxDepth = n
	}
}
