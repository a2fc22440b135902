package mixo

import (
	"fmt"
	"strings"

	"github.com/mixo-go/mixo/internal/report"
)

// MethodTable binds a target object to the methods registered on a Mixer.
// Every method returns the table itself, so calls chain; the first error
// sticks and turns the remaining chain into no-ops. Check Err at the end
// of a chain.
type MethodTable struct {
	mixer  *Mixer
	target Object
	err    error
}

// Call invokes the registered method name with the given arguments,
// mutating the bound target.
func (t *MethodTable) Call(name string, callArgs ...any) *MethodTable {
	if t.err != nil {
		return t
	}

	fn, ok := t.mixer.methods.Lookup(name)
	if !ok {
		t.err = fmt.Errorf("%w: unknown method %q (registered: %s)",
			report.ErrIllegalArgument, name, strings.Join(t.mixer.methods.Names(), ", "))

		return t
	}

	parsed, err := fn(t.target, t.mixer.parser.Parse, callArgs)
	if err != nil {
		t.err = err
		return t
	}

	t.err = t.mixer.executor.Apply(
		t.target, parsed.Source, parsed.Selection, parsed.Filters, parsed.Overrides)

	return t
}

// With applies the mixin method: a shallow, selective property copy.
func (t *MethodTable) With(callArgs ...any) *MethodTable {
	return t.Call(MixinName, callArgs...)
}

// WithDelegate applies the delegation method: underscore-prefixed keys
// are excluded and function values keep the source as their receiver.
func (t *MethodTable) WithDelegate(callArgs ...any) *MethodTable {
	return t.Call(DelegateName, callArgs...)
}

// WithCall applies the call-then-mixin method: the constructor's own
// properties become the source for a normal composition.
func (t *MethodTable) WithCall(callArgs ...any) *MethodTable {
	return t.Call(CallName, callArgs...)
}

// Err returns the first error raised by the chain, if any.
func (t *MethodTable) Err() error {
	return t.err
}

// Target returns the bound target object.
func (t *MethodTable) Target() Object {
	return t.target
}
