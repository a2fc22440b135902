package method

import (
	"fmt"
	"strings"

	"github.com/mixo-go/mixo/internal/args"
	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/pipeline"
	"github.com/mixo-go/mixo/internal/report"
)

// Default names for the built-in methods.
const (
	MixinName    = "with"
	DelegateName = "withDelegate"
	CallName     = "withCall"
)

// ErrNoConstructor reports a withCall invocation whose first argument is
// not a constructor. It is an illegal-argument error.
var ErrNoConstructor = fmt.Errorf("%w: withCall first argument must be a constructor",
	report.ErrIllegalArgument)

// Ctor is a constructor invoked by the call-then-mixin method. It runs
// against a Scope whose reads fall through to the live target, so the
// body can call members mixed in earlier; everything it sets on the scope
// becomes the synthetic source for the normal selection path.
type Ctor func(self *object.Scope, ctorArgs ...any)

// Mixin is the plain composition method: parse and apply, no added
// filters.
func Mixin(_ object.Object, parse ParseFunc, rawArgs []any) (*args.Parsed, error) {
	return parse(rawArgs)
}

// Delegate composes function-valued properties so they keep executing
// against the source. It prepends a filter dropping every key with a
// leading underscore (private, never delegated) and appends a filter that
// rebinds Func values to the source object, so they run with the source
// as receiver no matter how they are invoked on the target.
func Delegate(_ object.Object, parse ParseFunc, rawArgs []any) (*args.Parsed, error) {
	parsed, err := parse(rawArgs)
	if err != nil {
		return nil, err
	}

	private := pipeline.Filter(func(ctx *pipeline.Context) (bool, error) {
		return !strings.HasPrefix(ctx.Key, "_"), nil
	})

	source := parsed.Source
	rebind := pipeline.Filter(func(ctx *pipeline.Context) (bool, error) {
		if fn, ok := ctx.Value.(object.Func); ok {
			ctx.Value = object.Func(func(_ object.Object, callArgs ...any) any {
				return fn(source, callArgs...)
			})
		}

		return true, nil
	})

	parsed.Filters = append([]pipeline.Filter{private}, parsed.Filters...)
	parsed.Filters = append(parsed.Filters, rebind)

	return parsed, nil
}

// Call is the call-then-mixin method. The first argument must be a Ctor,
// or a []any whose first element is one with the constructor arguments
// following it. The constructor runs against a throwaway Scope over the
// live target, its own properties are harvested into a synthetic source,
// and the remaining arguments drive the normal selection/filter path over
// that source.
func Call(target object.Object, parse ParseFunc, rawArgs []any) (*args.Parsed, error) {
	if len(rawArgs) == 0 {
		return nil, ErrNoConstructor
	}

	ctor, ctorArgs, err := resolveCtor(rawArgs[0])
	if err != nil {
		return nil, err
	}

	scope := object.NewScope(target)
	ctor(scope, ctorArgs...)

	parseArgs := append([]any{scope.Own()}, rawArgs[1:]...)

	return parse(parseArgs)
}

// resolveCtor extracts the constructor and its arguments from the first
// raw argument.
func resolveCtor(arg any) (Ctor, []any, error) {
	switch a := arg.(type) {
	case Ctor:
		return a, nil, nil

	case func(*object.Scope, ...any):
		return a, nil, nil

	case []any:
		if len(a) == 0 {
			return nil, nil, ErrNoConstructor
		}

		ctor, _, err := resolveCtor(a[0])
		if err != nil {
			return nil, nil, err
		}

		return ctor, a[1:], nil

	default:
		return nil, nil, ErrNoConstructor
	}
}

// Builtins returns a registry with the default methods registered under
// their default names.
func Builtins() *Registry {
	r := NewRegistry()
	r.Register(MixinName, Mixin)
	r.Register(DelegateName, Delegate)
	r.Register(CallName, Call)

	return r
}
