package pragma

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps pragma names to handlers.  A Registry is safe for
// concurrent use; a nil Registry resolves nothing.
type Registry struct {
	mu sync.RWMutex
	d  map[string]Handler
}

// NewRegistry returns a registry holding hs.  It panics on a name
// collision or an invalid name, which is always a programming error.
func NewRegistry(hs ...Handler) *Registry {
	r := &Registry{d: make(map[string]Handler, len(hs))}
	for _, h := range hs {
		if err := r.Register(h); err != nil {
			panic(err)
		}
	}
	return r
}

// Builtin returns a registry with the stock handlers: include, osenv
// and let.
func Builtin(searchPath ...string) *Registry {
	return NewRegistry(
		NewInclude(searchPath...),
		NewOSEnv(),
		NewLet(nil),
	)
}

func (r *Registry) Register(h Handler) error {
	n := h.String()
	if !ValidName(n) {
		return fmt.Errorf("%w: %q", ErrName, n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.d[n]; ok {
		return fmt.Errorf("%w: %q", ErrHandlerExists, n)
	}
	r.d[n] = h
	return nil
}

// Lookup returns the handler registered under n, or nil.
func (r *Registry) Lookup(n string) Handler {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.d[n]
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.d))
}
