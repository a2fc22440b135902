// Package mixo composes objects selectively: it copies a chosen subset of
// a source object's properties onto a target, passing each property
// through an ordered filter pipeline and detecting naming collisions.
//
// A Mixer owns the selector registry, the method registry, and the error
// configuration. Composition starts from Extend, which binds a target to
// the registered methods:
//
//	m := mixo.New()
//	target := mixo.Object{}
//
//	err := m.Extend(target).
//		With(source, "!secret").
//		WithDelegate(api).
//		Err()
//
// Selection arguments accept literal property names, selector-prefixed
// names ("!name" removes from the selection, "#name" exempts a collision),
// regular expressions, rename maps, and filter functions. Nested []any
// arguments are flattened in place, so argument bundles can be passed
// around as single values.
//
// Custom selectors and methods are registered on the Mixer; registering
// nil removes an entry and returns the previous handler, which is also
// the way to rename one:
//
//	neg := m.RegisterSelector("!", nil)
//	m.RegisterSelector("~", neg)
package mixo
