// Package compose orchestrates file-based composition for the CLI: it
// loads a target object and one or more source objects from YAML files,
// builds a mixer from the effective configuration, and applies the
// selected composition method.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/mixo-go/mixo/internal/logging"
	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/yamlutil"
	"github.com/mixo-go/mixo/pkg/mixo"
)

// Options configures a file-based composition run.
type Options struct {
	// TargetFile is the YAML file holding the target object (first
	// document if the file has several).
	TargetFile string

	// SourceFiles are YAML files holding source objects. Every document
	// in every file is applied in order.
	SourceFiles []string

	// Select lists selector strings passed to the composition method
	// ("!key" negates, "#key" exempts, anything else selects).
	Select []string

	// Pattern selects matching source properties by regular expression.
	Pattern string

	// Rename maps source property names to target property names.
	Rename map[string]string

	// Method names the composition method (default: with).
	Method string

	// StrictMissing raises an error when a selected property is absent
	// from the source.
	StrictMissing bool

	// StrictCollision raises an error when a copied property overwrites
	// an existing target property.
	StrictCollision bool
}

// LoadObject reads the first YAML document of the given file as an object.
func LoadObject(path string) (object.Object, error) {
	docs, err := LoadObjects(path)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: no YAML documents found", path)
	}

	return docs[0], nil
}

// LoadObjects reads all YAML documents of the given file as objects.
func LoadObjects(path string) ([]object.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	docs, err := yamlutil.DecodeDocuments(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	objs := make([]object.Object, len(docs))
	for i, doc := range docs {
		objs[i] = object.Object(doc)
	}

	return objs, nil
}

// NewMixer builds a mixer honoring the run's strictness options.
func NewMixer(opts Options) *mixo.Mixer {
	return mixo.New(
		mixo.WithThrowPropertyNotFound(opts.StrictMissing),
		mixo.WithThrowOverride(opts.StrictCollision),
	)
}

// Apply runs the composition against target in place using the sources
// and selection rules from opts.
func Apply(ctx context.Context, target object.Object, sources []object.Object, opts Options) error {
	logger := logging.FromContext(ctx)

	method := opts.Method
	if method == "" {
		method = mixo.MixinName
	}

	callArgs, err := buildCallArgs(opts)
	if err != nil {
		return err
	}

	mixer := NewMixer(opts)

	for i, source := range sources {
		logger.Debug("applying source",
			slog.Int("index", i),
			slog.String("method", method),
			slog.Int("properties", len(source)),
		)

		args := append([]any{source}, callArgs...)

		if err := mixer.Extend(target).Call(method, args...).Err(); err != nil {
			return fmt.Errorf("source %d: %w", i, err)
		}
	}

	return nil
}

// Run loads the target and sources, applies the composition, and
// returns the composed target.
func Run(ctx context.Context, opts Options) (object.Object, error) {
	target, err := LoadObject(opts.TargetFile)
	if err != nil {
		return nil, err
	}

	var sources []object.Object

	for _, path := range opts.SourceFiles {
		docs, err := LoadObjects(path)
		if err != nil {
			return nil, err
		}

		sources = append(sources, docs...)
	}

	if err := Apply(ctx, target, sources, opts); err != nil {
		return nil, err
	}

	return target, nil
}

// buildCallArgs converts the selection rules into method call arguments:
// pattern first, then selector strings, then the rename map.
func buildCallArgs(opts Options) ([]any, error) {
	var args []any

	if opts.Pattern != "" {
		re, err := regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", opts.Pattern, err)
		}

		args = append(args, re)
	}

	for _, s := range opts.Select {
		args = append(args, s)
	}

	if len(opts.Rename) > 0 {
		args = append(args, opts.Rename)
	}

	return args, nil
}
