package selector

// Default prefixes for the built-in selectors.
const (
	NegatePrefix   = "!"
	OverridePrefix = "#"
)

// Negate is the built-in negation selector. When the selection is still
// empty it first selects every source property, so a leading "!x" means
// "everything except x". After other explicit selections it only removes
// x from what is already selected. A key absent from the selection raises
// a property-not-found error, subject to configuration.
func Negate(ctx *Context) error {
	if ctx.Selection.Len() == 0 {
		ctx.Selection.AddAll(ctx.Source)
	}

	if !ctx.Selection.Remove(ctx.Key) {
		return ctx.Report.PropertyNotFound(ctx.Key, ctx.Source)
	}

	return nil
}

// Override is the built-in override selector. It selects the key (mapped
// to the resolved target name) and exempts it from collision reporting.
// It never selects anything beyond its own key; combine it with a pattern
// or negation to select the rest.
func Override(ctx *Context) error {
	ctx.Selection.Add(ctx.Key, ctx.Target)
	ctx.Overrides.Add(ctx.Key)

	return nil
}

// Builtins returns a registry with the default selectors registered under
// their default prefixes.
func Builtins() *Registry {
	r := NewRegistry()
	r.Register(NegatePrefix, Negate)
	r.Register(OverridePrefix, Override)

	return r
}
