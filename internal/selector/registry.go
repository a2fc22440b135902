package selector

import (
	"sync"

	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/report"
)

// Context is handed to a selector when its prefix matches a key argument.
// Source, Key, and Target are read-only inputs; Selection and Overrides
// are the output collections the selector mutates directly.
type Context struct {
	// Source is the source object of the current composition call.
	Source object.Object

	// Key is the remaining key text after prefix removal.
	Key string

	// Target is the resolved target property name. It equals Key unless
	// the selector was invoked through a rename mapping.
	Target string

	// Selection is the selection set being built for the current call.
	Selection *Selection

	// Overrides is the override set being built for the current call.
	Overrides Overrides

	// Report raises configuration-gated errors.
	Report *report.Reporter
}

// Func is a selector: it resolves a prefixed key into concrete selections
// by mutating the Context's output collections.
type Func func(ctx *Context) error

// Registry maps prefix strings to selectors. Prefixes are checked in
// registration order and the first match wins; that order is the
// documented, deterministic resolution policy.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	handlers map[string]Func
}

// NewRegistry creates an empty selector registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Func),
	}
}

// Register binds fn to prefix and returns the previous handler, if any.
// A nil fn removes the prefix. Re-registering an existing prefix keeps its
// position in the resolution order.
func (r *Registry) Register(prefix string, fn Func) Func {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.handlers[prefix]

	if fn == nil {
		if prev != nil {
			delete(r.handlers, prefix)

			for i, p := range r.order {
				if p == prefix {
					r.order = append(r.order[:i], r.order[i+1:]...)
					break
				}
			}
		}

		return prev
	}

	if prev == nil {
		r.order = append(r.order, prefix)
	}

	r.handlers[prefix] = fn

	return prev
}

// Lookup returns the handler registered for prefix, if any.
func (r *Registry) Lookup(prefix string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.handlers[prefix]

	return fn, ok
}

// Resolve matches key against the registered prefixes in registration
// order. On a match it returns the selector and the key text after the
// prefix; otherwise ok is false and the whole key is a literal name.
func (r *Registry) Resolve(key string) (fn Func, suffix string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, prefix := range r.order {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			return r.handlers[prefix], key[len(prefix):], true
		}
	}

	return nil, "", false
}

// Prefixes returns the registered prefixes in resolution order.
func (r *Registry) Prefixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}
