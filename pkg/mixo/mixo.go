package mixo

import (
	"github.com/mixo-go/mixo/internal/args"
	"github.com/mixo-go/mixo/internal/method"
	"github.com/mixo-go/mixo/internal/pipeline"
	"github.com/mixo-go/mixo/internal/report"
	"github.com/mixo-go/mixo/internal/selector"
)

// WrappedExtendFunc is the alternate composition function invoked when
// Extend is called with extra positional arguments. It is the escape
// hatch for interoperating with an unrelated merge utility.
type WrappedExtendFunc func(target Object, extendArgs ...any) error

// Mixer owns the selector registry, the method registry, and the error
// configuration for a family of composition calls. Construct one per
// embedding application; there is no package-level shared state.
//
// A Mixer is safe for concurrent registration, but composition calls
// against the same target must be externally sequenced — the target is
// mutated in place.
type Mixer struct {
	selectors *selector.Registry
	methods   *method.Registry
	reporter  *report.Reporter
	parser    *args.Parser
	executor  *pipeline.Executor
	wrapped   WrappedExtendFunc
}

// Option configures a Mixer during construction.
type Option func(*Mixer)

// WithSelector registers an additional selector under prefix.
func WithSelector(prefix string, fn SelectorFunc) Option {
	return func(m *Mixer) {
		m.selectors.Register(prefix, fn)
	}
}

// WithMethod registers an additional composition method under name.
func WithMethod(name string, fn MethodHandler) Option {
	return func(m *Mixer) {
		m.methods.Register(name, fn)
	}
}

// WithThrowPropertyNotFound sets the property-not-found toggle.
func WithThrowPropertyNotFound(throw bool) Option {
	return func(m *Mixer) {
		m.reporter.Config().ThrowPropertyNotFound = throw
	}
}

// WithThrowOverride sets the collision toggle.
func WithThrowOverride(throw bool) Option {
	return func(m *Mixer) {
		m.reporter.Config().ThrowOverride = throw
	}
}

// WithWrappedExtend registers the alternate composition function invoked
// when Extend receives extra positional arguments.
func WithWrappedExtend(fn WrappedExtendFunc) Option {
	return func(m *Mixer) {
		m.wrapped = fn
	}
}

// New creates a Mixer with the built-in selectors ("!" negation, "#"
// override) and methods (with, withDelegate, withCall) registered, both
// error toggles enabled, and no wrapped extend function.
func New(opts ...Option) *Mixer {
	reporter := report.NewReporter(report.DefaultConfig())

	m := &Mixer{
		selectors: selector.Builtins(),
		methods:   method.Builtins(),
		reporter:  reporter,
		executor:  pipeline.NewExecutor(reporter),
	}
	m.parser = args.NewParser(m.selectors, reporter)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Config returns the live error configuration. Changes apply to
// subsequent operations immediately.
func (m *Mixer) Config() *Config {
	return m.reporter.Config()
}

// RegisterSelector binds fn to prefix and returns the previous handler,
// if any. A nil fn removes the prefix; re-registering the returned
// handler under a new prefix renames the selector.
func (m *Mixer) RegisterSelector(prefix string, fn SelectorFunc) SelectorFunc {
	return m.selectors.Register(prefix, fn)
}

// RegisterMethod binds fn to name and returns the previous handler, if
// any. A nil fn removes the name.
func (m *Mixer) RegisterMethod(name string, fn MethodHandler) MethodHandler {
	return m.methods.Register(name, fn)
}

// SetWrappedExtend registers the alternate composition function. Passing
// nil clears it.
func (m *Mixer) SetWrappedExtend(fn WrappedExtendFunc) {
	m.wrapped = fn
}

// Extend binds target to the registered composition methods and returns
// the chainable method table.
//
// When extra positional arguments are given and a wrapped extend function
// is registered, the wrapped function is invoked with all arguments
// instead, and its error is carried by the returned table. Extra
// arguments without a wrapped function are an illegal argument.
func (m *Mixer) Extend(target Object, extra ...any) *MethodTable {
	t := &MethodTable{mixer: m, target: target}

	if len(extra) > 0 {
		if m.wrapped == nil {
			t.err = m.reporter.IllegalArgument(
				"extend called with %d extra arguments but no wrapped extend function is registered",
				len(extra))

			return t
		}

		t.err = m.wrapped(target, extra...)
	}

	return t
}
