package pragma

import (
	"regexp"

	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/token"
)

// Handler implements one named pragma.  String returns the name the
// handler is dispatched under.  Handle receives the argument of the
// pragma line, already unquoted; args is empty when the line carried
// none.
type Handler interface {
	String() string
	Handle(ctx Context, args []string) error
}

// Context is the handler's view into the running parse.
type Context interface {
	// Kind is the type of the current frame, MappingType or
	// SequenceType.
	Kind() ir.Type

	// Insert binds key to v in the current frame, overwriting any
	// existing binding.  Errors when the frame is not a mapping.
	Insert(key string, v *ir.Node) error

	// Append adds v to the current frame.  Errors when the frame is
	// not a sequence.
	Append(v *ir.Node) error

	// Pos is the position of the pragma line being handled.
	Pos() token.Pos

	// Depth is the current include nesting depth, zero at the top
	// level document.
	Depth() int

	// Splice parses text as a perky document whose root kind matches
	// the current frame and merges the result into it.  Mapping keys
	// from text overwrite existing bindings; sequence values append.
	Splice(text []byte, source string) error
}

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidName reports whether s can name a pragma handler.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// name gives handlers their String method by embedding.
type name string

func (n name) String() string {
	return string(n)
}
