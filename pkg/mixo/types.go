package mixo

import (
	"github.com/mixo-go/mixo/internal/args"
	"github.com/mixo-go/mixo/internal/method"
	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/pipeline"
	"github.com/mixo-go/mixo/internal/report"
	"github.com/mixo-go/mixo/internal/selector"
)

// Object is the unit of composition: a mutable property map.
type Object = object.Object

// Func is a function-valued property with an explicit self receiver.
type Func = object.Func

// Scope is the receiver handed to constructors by WithCall.
type Scope = object.Scope

// Ctor is a constructor invoked by WithCall.
type Ctor = method.Ctor

// Filter is one stage of the per-property filter pipeline.
type Filter = pipeline.Filter

// FilterContext is the per-property record a Filter operates on.
type FilterContext = pipeline.Context

// SelectorFunc resolves a prefixed key into concrete selections.
type SelectorFunc = selector.Func

// SelectorContext is the record a SelectorFunc operates on.
type SelectorContext = selector.Context

// MethodHandler is a registered composition method.
type MethodHandler = method.Handler

// Parsed is the normalized argument-parse result a MethodHandler returns.
type Parsed = args.Parsed

// Selection is the ordered source-to-target name mapping selectors build.
type Selection = selector.Selection

// Overrides is the collision-exemption set selectors build.
type Overrides = selector.Overrides

// ParseFunc parses raw method arguments; handlers receive one.
type ParseFunc = method.ParseFunc

// Config holds the runtime error toggles.
type Config = report.Config

// Error kinds raised by composition calls. Test with errors.Is.
var (
	ErrIllegalArgument  = report.ErrIllegalArgument
	ErrPropertyNotFound = report.ErrPropertyNotFound
	ErrPropertyOverride = report.ErrPropertyOverride
)

// Default registration names for the built-in selectors and methods.
const (
	NegatePrefix   = selector.NegatePrefix
	OverridePrefix = selector.OverridePrefix
	MixinName      = method.MixinName
	DelegateName   = method.DelegateName
	CallName       = method.CallName
)

// FromStruct harvests the exported fields of a struct into an Object, so
// structs can be used as composition sources.
func FromStruct(v any) Object {
	return object.FromStruct(v)
}

// DeepCopy deep-copies an Object; useful for snapshotting a target before
// a dry-run composition.
func DeepCopy(obj Object) Object {
	return object.DeepCopy(obj)
}
