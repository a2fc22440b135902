package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Builtin(t *testing.T) {
	// --- mixin
	p, err := Resolve("mixin", nil, "dev")
	require.NoError(t, err)
	assert.Equal(t, "with", p.Method)

	// --- delegate
	p, err = Resolve("delegate", nil, "dev")
	require.NoError(t, err)
	assert.Equal(t, "withDelegate", p.Method)

	// --- public has a pattern
	p, err = Resolve("public", nil, "dev")
	require.NoError(t, err)
	assert.Equal(t, `^[^_]`, p.Pattern)
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("nope", nil, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "nope"`)
}

func TestResolve_Custom(t *testing.T) {
	custom := map[string]Profile{
		"svc": {
			Select: []string{"name", "port"},
			Rename: map[string]string{"name": "serviceName"},
		},
	}

	p, err := Resolve("svc", custom, "dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "port"}, p.Select)
	assert.Equal(t, "serviceName", p.Rename["name"])
}

func TestResolve_Extends(t *testing.T) {
	custom := map[string]Profile{
		"public-renamed": {
			Extends: "public",
			Select:  []string{"!internal"},
			Rename:  map[string]string{"name": "label"},
		},
	}

	p, err := Resolve("public-renamed", custom, "dev")
	require.NoError(t, err)

	// Base pattern and method survive, select lists append.
	assert.Equal(t, `^[^_]`, p.Pattern)
	assert.Equal(t, "with", p.Method)
	assert.Equal(t, []string{"!internal"}, p.Select)
	assert.Equal(t, "label", p.Rename["name"])
}

func TestResolve_ExtendsUnknown(t *testing.T) {
	custom := map[string]Profile{
		"bad": {Extends: "missing"},
	}

	_, err := Resolve("bad", custom, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `extends unknown profile "missing"`)
}

func TestResolve_Requires(t *testing.T) {
	custom := map[string]Profile{
		"future": {Requires: ">= 99.0.0"},
		"past":   {Requires: ">= 0.1.0"},
	}

	// --- unsatisfied constraint
	_, err := Resolve("future", custom, "1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires mixo >= 99.0.0")

	// --- satisfied constraint
	_, err = Resolve("past", custom, "1.0.0")
	require.NoError(t, err)

	// --- dev builds skip the check
	_, err = Resolve("future", custom, "dev")
	require.NoError(t, err)
}

func TestResolve_RequiresInvalid(t *testing.T) {
	custom := map[string]Profile{
		"broken": {Requires: "not-a-constraint"},
	}

	_, err := Resolve("broken", custom, "1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid requires constraint")
}

func TestParse(t *testing.T) {
	data := []byte(`
profiles:
  svc:
    select: [name, port]
    method: with
    rename:
      name: serviceName
`)

	profiles, err := Parse(data)
	require.NoError(t, err)
	require.Contains(t, profiles, "svc")
	assert.Equal(t, []string{"name", "port"}, profiles["svc"].Select)
	assert.Equal(t, "serviceName", profiles["svc"].Rename["name"])
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"delegate", "mixin", "public"}, BuiltinNames())
}
