package pragma

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/perky-format/go-perky/debug"
)

// Include loads another perky file into the current frame.  The
// argument names the file; it is resolved against the search path in
// order and the first readable entry wins.
type Include struct {
	name
	searchPath []string
}

// NewInclude returns the include handler.  An empty search path means
// the current directory.
func NewInclude(searchPath ...string) *Include {
	if len(searchPath) == 0 {
		searchPath = []string{"."}
	}
	return &Include{
		name:       "include",
		searchPath: slices.Clone(searchPath),
	}
}

func (h *Include) Handle(ctx Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: include expects one file, got %d arguments", ErrArgs, len(args))
	}
	fname := args[0]
	if filepath.IsAbs(fname) {
		return h.splice(ctx, fname, fname)
	}
	tried := make([]string, 0, len(h.searchPath))
	for _, dir := range h.searchPath {
		path := filepath.Join(dir, fname)
		if _, err := os.Stat(path); err != nil {
			tried = append(tried, path)
			continue
		}
		return h.splice(ctx, fname, path)
	}
	return fmt.Errorf("%w: %q (tried %s)", ErrNotFound, fname, strings.Join(tried, ", "))
}

func (h *Include) splice(ctx Context, fname, path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNotFound, fname, err)
	}
	if debug.Include() {
		debug.Logf("include %q at %s, depth %d\n", path, ctx.Pos(), ctx.Depth())
	}
	return ctx.Splice(d, path)
}
