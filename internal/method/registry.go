// Package method implements the method registry and the built-in
// composition methods: mixin, delegation, and call-then-mixin.
package method

import (
	"sort"
	"sync"

	"github.com/mixo-go/mixo/internal/args"
	"github.com/mixo-go/mixo/internal/object"
)

// ParseFunc parses raw positional arguments into a normalized result.
// Handlers must call it exactly once with the arguments they want parsed.
type ParseFunc func(rawArgs []any) (*args.Parsed, error)

// Handler is a composition method. It receives the live target, the
// argument parser, and the raw call arguments; it returns the parsed
// result — with any method-specific filters prepended or appended — for
// the executor to apply.
type Handler func(target object.Object, parse ParseFunc, rawArgs []any) (*args.Parsed, error)

// Registry maps method names to handlers. Registration and removal follow
// the same contract as the selector registry: registering nil removes the
// name and returns the previous handler.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty method registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register binds fn to name and returns the previous handler, if any.
// A nil fn removes the name.
func (r *Registry) Register(name string, fn Handler) Handler {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.handlers[name]

	if fn == nil {
		delete(r.handlers, name)
		return prev
	}

	r.handlers[name] = fn

	return prev
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.handlers[name]

	return fn, ok
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
