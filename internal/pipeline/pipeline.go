// Package pipeline implements the filter pipeline executor: it runs every
// selected property through the ordered filter list and writes survivors
// onto the target with collision detection.
package pipeline

import (
	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/selector"
)

// Context is the per-property record a filter operates on. Target, Source,
// and Key are inputs; Value and TargetKey may be rewritten by filters.
// Clearing TargetKey to the empty string rejects the property, as does a
// filter returning false. The executor owns the Context for the duration
// of one property and never retains it.
type Context struct {
	// Target is the object being composed. Read-only for filters.
	Target object.Object

	// Source is the object supplying properties. Read-only for filters.
	Source object.Object

	// Key is the source property name currently being processed.
	Key string

	// Value is the property value; filters may transform it.
	Value any

	// TargetKey is the destination property name; filters may rename it.
	// Empty means reject.
	TargetKey string
}

// Filter is one pipeline stage. Returning false rejects the property:
// later filters never see it and it is not applied to the target.
type Filter func(ctx *Context) (bool, error)

// Executor applies a filter pipeline to a selection and mutates the
// target accordingly.
type Executor struct {
	report reporter
}

// reporter is the subset of the error reporter the executor needs.
type reporter interface {
	PropertyNotFound(key string, source object.Object) error
	PropertyOverride(key string, target object.Object) error
}

// NewExecutor creates an Executor raising errors through r.
func NewExecutor(r reporter) *Executor {
	return &Executor{report: r}
}

// Apply processes every entry of sel in insertion order: look up the
// source value, run the filter pipeline, then assign to the target.
//
// A missing source property raises property-not-found; when that error is
// disabled the property is skipped, since there is no value to apply. A
// collision on the target raises property-override unless the source key
// is exempted — the assignment happens before the error is raised, so the
// overwrite is never silently dropped and never prevented.
func (e *Executor) Apply(
	target, source object.Object,
	sel *selector.Selection,
	filters []Filter,
	overrides selector.Overrides,
) error {
	for _, entry := range sel.Entries() {
		value, exists := source[entry.Source]
		if !exists {
			if err := e.report.PropertyNotFound(entry.Source, source); err != nil {
				return err
			}

			continue
		}

		ctx := &Context{
			Target:    target,
			Source:    source,
			Key:       entry.Source,
			Value:     value,
			TargetKey: entry.Target,
		}

		rejected := false

		for _, filter := range filters {
			ok, err := filter(ctx)
			if err != nil {
				return err
			}

			if !ok || ctx.TargetKey == "" {
				rejected = true
				break
			}
		}

		if rejected {
			continue
		}

		_, collision := target[ctx.TargetKey]

		// Overwrite first, then report: the documented contract is that
		// an override error never undoes the mutation.
		target[ctx.TargetKey] = ctx.Value

		if collision && !overrides.Has(entry.Source) {
			if err := e.report.PropertyOverride(ctx.TargetKey, target); err != nil {
				return err
			}
		}
	}

	return nil
}
