package object

// Scope is the capability-scoped receiver handed to constructors during
// call-then-mixin composition. Reads fall through to the live base object
// (so a constructor can call members mixed in earlier), writes land in a
// separate own set that is harvested afterwards as the synthetic source.
type Scope struct {
	base Object
	own  Object
}

// NewScope creates a Scope over base. The base is read live, never copied,
// so members added to base between reads are visible.
func NewScope(base Object) *Scope {
	return &Scope{
		base: base,
		own:  make(Object),
	}
}

// Get looks up key in the own set first, then in the base object.
func (s *Scope) Get(key string) (any, bool) {
	if v, ok := s.own[key]; ok {
		return v, true
	}

	v, ok := s.base[key]

	return v, ok
}

// Set defines an own property on the scope. Own properties shadow base
// properties of the same name but never mutate the base.
func (s *Scope) Set(key string, value any) {
	s.own[key] = value
}

// Call invokes a Func-valued member visible from the scope, passing the
// base object as the receiver. Returns nil when the member is absent or
// not callable.
func (s *Scope) Call(name string, args ...any) any {
	v, ok := s.Get(name)
	if !ok {
		return nil
	}

	fn, ok := v.(Func)
	if !ok {
		return nil
	}

	return fn(s.base, args...)
}

// Own returns the properties set on the scope itself, excluding everything
// inherited from the base. The returned Object is the live own set.
func (s *Scope) Own() Object {
	return s.own
}
