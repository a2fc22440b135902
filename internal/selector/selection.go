// Package selector implements the selection model: the ordered mapping
// from source to target property names built per composition call, the
// override exemption set, and the prefix-dispatched selector registry with
// its built-in negation and override selectors.
package selector

import "github.com/mixo-go/mixo/internal/object"

// Entry is one resolved selection: copy Source to Target on the target
// object. Source equals Target unless the property was renamed.
type Entry struct {
	Source string
	Target string
}

// Selection is the ordered set of resolved property selections for one
// composition call. Keys are concrete property names only — prefixes,
// patterns, and negation markers never survive into a Selection. Insertion
// order is preserved for reproducibility.
type Selection struct {
	order   []string
	targets map[string]string
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{
		targets: make(map[string]string),
	}
}

// Add maps source to target. Adding an existing source key updates its
// target without changing its position.
func (s *Selection) Add(source, target string) {
	if _, ok := s.targets[source]; !ok {
		s.order = append(s.order, source)
	}

	s.targets[source] = target
}

// AddAll adds an identity mapping for every enumerable property of obj,
// in sorted key order.
func (s *Selection) AddAll(obj object.Object) {
	for _, k := range object.Keys(obj) {
		s.Add(k, k)
	}
}

// Remove drops source from the selection. Reports whether it was present.
func (s *Selection) Remove(source string) bool {
	if _, ok := s.targets[source]; !ok {
		return false
	}

	delete(s.targets, source)

	for i, k := range s.order {
		if k == source {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true
}

// Has reports whether source is selected.
func (s *Selection) Has(source string) bool {
	_, ok := s.targets[source]
	return ok
}

// Len returns the number of selected properties.
func (s *Selection) Len() int {
	return len(s.order)
}

// Entries returns the selections in insertion order.
func (s *Selection) Entries() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		entries = append(entries, Entry{Source: k, Target: s.targets[k]})
	}

	return entries
}

// Overrides is the set of source property names exempted from collision
// reporting for the current composition call.
type Overrides map[string]struct{}

// NewOverrides creates an empty override set.
func NewOverrides() Overrides {
	return make(Overrides)
}

// Add exempts key from collision reporting.
func (o Overrides) Add(key string) {
	o[key] = struct{}{}
}

// Has reports whether key is exempted.
func (o Overrides) Has(key string) bool {
	_, ok := o[key]
	return ok
}
