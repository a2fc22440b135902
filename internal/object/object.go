// Package object defines the composition unit — a string-keyed property
// map — together with the helpers the rest of the engine builds on:
// deterministic key enumeration, deep copying, struct harvesting, and the
// capability-scoped receiver used by constructor-driven composition.
package object

import "sort"

// Object is the unit of composition: a mutable property map. Targets and
// sources are both Objects. Values may be anything, including Func values
// that behave like methods.
type Object = map[string]any

// Func is a function-valued property. The receiver is passed explicitly as
// self; delegation rebinds self to the original source object regardless of
// which Object the Func was copied onto.
type Func func(self Object, args ...any) any

// Keys returns the enumerable property names of obj in sorted order.
// Sorted order is the documented deterministic enumeration order for
// default-all selection and pattern matching.
func Keys(obj Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Has reports whether obj has an enumerable property named key.
func Has(obj Object, key string) bool {
	_, ok := obj[key]
	return ok
}
