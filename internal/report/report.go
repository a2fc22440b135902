// Package report implements the error reporter for composition failures.
// It defines the three error kinds the engine can raise, the runtime
// toggles that gate two of them, and a cycle-safe rendering of the
// offending objects for error messages.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/mixo-go/mixo/internal/object"
)

// Error kinds raised by the composition engine. Use errors.Is to test for
// them; the wrapped message carries the offending key and object.
var (
	// ErrIllegalArgument reports a malformed call shape. Never gated.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrPropertyNotFound reports a selected source key that does not
	// exist on the source object. Gated by Config.ThrowPropertyNotFound.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyOverride reports a collision on the target object.
	// Gated by Config.ThrowOverride.
	ErrPropertyOverride = errors.New("property override")
)

// Config holds the runtime error toggles. The reporter reads the flags at
// raise time, so changes take effect for subsequent operations immediately.
type Config struct {
	// ThrowPropertyNotFound controls whether selecting a nonexistent
	// source property raises an error. When false the property is
	// silently skipped.
	ThrowPropertyNotFound bool

	// ThrowOverride controls whether a target-property collision raises
	// an error. The assignment happens either way.
	ThrowOverride bool
}

// DefaultConfig returns a Config with both toggles enabled.
func DefaultConfig() *Config {
	return &Config{
		ThrowPropertyNotFound: true,
		ThrowOverride:         true,
	}
}

// Reporter formats and raises the error kinds, consulting the shared
// Config on every gated raise.
type Reporter struct {
	cfg *Config
}

// NewReporter creates a Reporter over cfg. A nil cfg behaves like
// DefaultConfig.
func NewReporter(cfg *Config) *Reporter {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Reporter{cfg: cfg}
}

// Config returns the shared configuration the reporter consults.
func (r *Reporter) Config() *Config {
	return r.cfg
}

// IllegalArgument raises an ErrIllegalArgument with the given detail.
// Not configurable; always returns a non-nil error.
func (r *Reporter) IllegalArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, fmt.Sprintf(format, args...))
}

// PropertyNotFound raises an ErrPropertyNotFound for key on source, or
// returns nil when the toggle is disabled.
func (r *Reporter) PropertyNotFound(key string, source object.Object) error {
	if !r.cfg.ThrowPropertyNotFound {
		return nil
	}

	return fmt.Errorf("%w: property %q does not exist on source %s",
		ErrPropertyNotFound, key, Render(source))
}

// PropertyOverride raises an ErrPropertyOverride for key on target, or
// returns nil when the toggle is disabled. Callers apply the assignment
// before raising; the error reports an overwrite that already happened.
func (r *Reporter) PropertyOverride(key string, target object.Object) error {
	if !r.cfg.ThrowOverride {
		return nil
	}

	return fmt.Errorf("%w: property %q already exists on target %s",
		ErrPropertyOverride, key, Render(target))
}

// renderer is a spew configuration tuned for single-line error payloads.
// Spew tracks visited pointers, so self-referential objects render as a
// circular marker instead of recursing forever.
var renderer = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                4,
}

// Render produces a cycle-safe, deterministic single-line rendering of v
// for inclusion in error messages.
func Render(v any) string {
	s := renderer.Sdump(v)
	return strings.Join(strings.Fields(s), " ")
}
