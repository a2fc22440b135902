// Package args implements the argument parser: it normalizes the
// heterogeneous positional arguments of a composition method into a
// source object, a resolved selection set, an override set, and an
// ordered filter pipeline.
package args

import (
	"regexp"
	"sort"

	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/pipeline"
	"github.com/mixo-go/mixo/internal/report"
	"github.com/mixo-go/mixo/internal/selector"
)

// Parsed is the normalized result of one composition call's arguments.
type Parsed struct {
	// Source supplies the properties to compose.
	Source object.Object

	// Selection maps selected source names to target names, in order.
	Selection *selector.Selection

	// Overrides exempts source names from collision reporting.
	Overrides selector.Overrides

	// Filters is the user-supplied filter pipeline, in call order.
	// Method handlers may prepend or append their own stages.
	Filters []pipeline.Filter
}

// Parser resolves raw arguments against a selector registry.
type Parser struct {
	selectors *selector.Registry
	report    *report.Reporter
}

// NewParser creates a Parser using the given selector registry and
// reporter.
func NewParser(selectors *selector.Registry, rep *report.Reporter) *Parser {
	return &Parser{selectors: selectors, report: rep}
}

// Parse interprets the positional arguments of a composition method.
//
// The first argument establishes the source: an Object is used directly,
// a struct is harvested field-by-field, and a string is the
// single-property shorthand — the next argument is the value and a
// one-key source is synthesized from the pair. Remaining arguments are
// consumed left to right: nested []any arguments are spliced in place,
// strings are resolved through the selector registry (or select a literal
// property), regular expressions select every matching source property,
// maps rename source properties to target names, and filter functions are
// appended to the pipeline. When no argument selected anything, every
// source property is selected.
func (p *Parser) Parse(rawArgs []any) (*Parsed, error) {
	source, rest, err := p.resolveSource(rawArgs)
	if err != nil {
		return nil, err
	}

	parsed := &Parsed{
		Source:    source,
		Selection: selector.NewSelection(),
		Overrides: selector.NewOverrides(),
	}

	queue := make([]any, len(rest))
	copy(queue, rest)

	for len(queue) > 0 {
		arg := queue[0]
		queue = queue[1:]

		switch a := arg.(type) {
		case []any:
			// Splice in place: the packaged arguments go to the front of
			// the queue, preserving relative order.
			queue = append(append([]any{}, a...), queue...)

		case string:
			if err := p.consumeKey(parsed, a, a); err != nil {
				return nil, err
			}

		case *regexp.Regexp:
			for _, k := range object.Keys(source) {
				if a.MatchString(k) {
					parsed.Selection.Add(k, k)
				}
			}

		case map[string]string:
			for _, k := range sortedKeys(a) {
				if err := p.consumeKey(parsed, k, a[k]); err != nil {
					return nil, err
				}
			}

		case object.Object:
			for _, k := range object.Keys(a) {
				target, ok := a[k].(string)
				if !ok {
					return nil, p.report.IllegalArgument(
						"target property name is not a string: %s", report.Render(a[k]))
				}

				if err := p.consumeKey(parsed, k, target); err != nil {
					return nil, err
				}
			}

		case pipeline.Filter:
			parsed.Filters = append(parsed.Filters, a)

		case func(*pipeline.Context) (bool, error):
			parsed.Filters = append(parsed.Filters, pipeline.Filter(a))

		default:
			return nil, p.report.IllegalArgument(
				"unsupported argument: %s", report.Render(arg))
		}
	}

	// Default-all: nothing was selected explicitly, so select every
	// enumerable source property.
	if parsed.Selection.Len() == 0 {
		parsed.Selection.AddAll(source)
	}

	return parsed, nil
}

// resolveSource interprets the leading arguments into the source object
// and returns the remaining argument list.
func (p *Parser) resolveSource(rawArgs []any) (object.Object, []any, error) {
	if len(rawArgs) == 0 {
		return nil, nil, p.report.IllegalArgument("no source object found: no arguments given")
	}

	switch a := rawArgs[0].(type) {
	case string:
		// Single-property shorthand: the next argument is the value.
		if len(rawArgs) < 2 {
			return nil, nil, p.report.IllegalArgument(
				"no value given for property %q", a)
		}

		return object.Object{a: rawArgs[1]}, rawArgs[2:], nil

	case object.Object:
		return a, rawArgs[1:], nil

	case *regexp.Regexp, map[string]string,
		pipeline.Filter, func(*pipeline.Context) (bool, error):
		// Selection arguments cannot establish a source.
		return nil, nil, p.report.IllegalArgument(
			"no source object found: %s", report.Render(rawArgs[0]))

	default:
		if src := object.FromStruct(a); src != nil {
			return src, rawArgs[1:], nil
		}

		return nil, nil, p.report.IllegalArgument(
			"no source object found: %s", report.Render(rawArgs[0]))
	}
}

// consumeKey resolves one key through the selector registry, falling back
// to a literal selection when no prefix matches.
func (p *Parser) consumeKey(parsed *Parsed, key, target string) error {
	fn, suffix, ok := p.selectors.Resolve(key)
	if !ok {
		parsed.Selection.Add(key, target)
		return nil
	}

	// When the key came with its own target (rename mapping), the target
	// stands; a bare prefixed string targets the suffix itself.
	if target == key {
		target = suffix
	}

	return fn(&selector.Context{
		Source:    parsed.Source,
		Key:       suffix,
		Target:    target,
		Selection: parsed.Selection,
		Overrides: parsed.Overrides,
		Report:    p.report,
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
