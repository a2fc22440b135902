// Package plan previews a composition without committing it: the target
// is deep-copied, the composition runs against the copy, and the result
// is rendered as a unified diff between the original and composed
// serializations.
package plan

import (
	"fmt"

	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/output"
)

// ComposeFunc applies a composition to the given target in place.
type ComposeFunc func(target object.Object) error

// Result holds the outcome of a dry-run composition.
type Result struct {
	// Before is the canonical serialization of the original target.
	Before string
	// After is the canonical serialization of the composed target.
	After string
	// Composed is the composed copy of the target.
	Composed object.Object
	// Diff is the unified diff between Before and After.
	Diff *DiffResult
}

// Run executes a dry-run composition: compose applies to a deep copy of
// target, the original is left untouched, and the result carries the
// diff between the two serialized forms.
func Run(target object.Object, compose ComposeFunc, opts DiffOptions) (*Result, error) {
	before, err := output.Serialize(target, output.DefaultSerializeOptions())
	if err != nil {
		return nil, fmt.Errorf("serializing target: %w", err)
	}

	copied := object.DeepCopy(target)

	if err := compose(copied); err != nil {
		return nil, fmt.Errorf("composing: %w", err)
	}

	after, err := output.Serialize(copied, output.DefaultSerializeOptions())
	if err != nil {
		return nil, fmt.Errorf("serializing composed target: %w", err)
	}

	diff, err := ComputeDiff(string(before), string(after), opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Before:   string(before),
		After:    string(after),
		Composed: copied,
		Diff:     diff,
	}, nil
}
