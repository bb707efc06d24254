package pragma

import (
	"fmt"
	"os"

	"github.com/perky-format/go-perky/ir"
)

// OSEnv reads an environment variable into the current frame.  In a
// mapping frame `=osenv HOME` binds HOME to its value; in a sequence
// frame the value is appended.  Unset variables read as empty.
type OSEnv struct {
	name
}

func NewOSEnv() *OSEnv {
	return &OSEnv{name: "osenv"}
}

func (h *OSEnv) Handle(ctx Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: osenv expects one variable name, got %d arguments", ErrArgs, len(args))
	}
	v := ir.FromString(os.Getenv(args[0]))
	if ctx.Kind() == ir.MappingType {
		return ctx.Insert(args[0], v)
	}
	return ctx.Append(v)
}
