// Package profile implements reusable, named composition profiles: a
// bundle of selector strings, a pattern, renames, and a method choice
// that can be applied by name via --profile. Profiles are defined in the
// config file and may extend the built-in ones.
package profile

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// Profile describes one reusable composition setup.
type Profile struct {
	// Select lists selector strings applied in order ("!key" negates,
	// "#key" exempts a collision, anything else selects literally).
	Select []string `json:"select,omitempty"`

	// Pattern is a regular expression selecting matching source
	// properties, applied before Select.
	Pattern string `json:"pattern,omitempty"`

	// Rename maps source property names to target property names.
	Rename map[string]string `json:"rename,omitempty"`

	// Method names the composition method to apply (default: with).
	Method string `json:"method,omitempty"`

	// Requires is a semver constraint on the mixo version this profile
	// needs (e.g. ">= 0.3.0"). Checked at resolution time.
	Requires string `json:"requires,omitempty"`

	// Extends names a built-in profile to extend with these rules.
	Extends string `json:"extends,omitempty"`
}

// builtinProfiles contains the built-in profile definitions.
var builtinProfiles = map[string]Profile{
	"mixin": {
		Method: "with",
	},
	"delegate": {
		Method: "withDelegate",
	},
	"public": {
		// Select only properties without a leading underscore.
		Pattern: `^[^_]`,
		Method:  "with",
	},
}

// BuiltinNames returns the names of all built-in profiles, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// File is the profiles section of the config file.
type File struct {
	Profiles map[string]Profile `json:"profiles,omitempty"`
}

// Parse extracts the profiles section from raw config file bytes.
func Parse(data []byte) (map[string]Profile, error) {
	var f File
	if err := sigsyaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	return f.Profiles, nil
}

// Resolve resolves a profile name against the built-in profiles and the
// custom set, merging extensions and checking the version requirement.
// toolVersion is the running mixo version; constraints on development
// builds ("dev") are skipped.
func Resolve(name string, custom map[string]Profile, toolVersion string) (Profile, error) {
	p, ok := builtinProfiles[name]
	if !ok {
		p, ok = custom[name]
		if !ok {
			return Profile{}, fmt.Errorf("unknown profile %q (built-in: %v)", name, BuiltinNames())
		}

		if p.Extends != "" {
			base, isBuiltin := builtinProfiles[p.Extends]
			if !isBuiltin {
				return Profile{}, fmt.Errorf("profile %q extends unknown profile %q", name, p.Extends)
			}

			p = merge(base, p)
		}
	}

	if err := checkRequires(name, p.Requires, toolVersion); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// merge layers override on top of base: list fields append, scalar
// fields replace when set.
func merge(base, override Profile) Profile {
	out := base

	out.Select = append(append([]string{}, base.Select...), override.Select...)

	if override.Pattern != "" {
		out.Pattern = override.Pattern
	}

	if override.Method != "" {
		out.Method = override.Method
	}

	if len(override.Rename) > 0 {
		out.Rename = make(map[string]string, len(base.Rename)+len(override.Rename))
		for k, v := range base.Rename {
			out.Rename[k] = v
		}

		for k, v := range override.Rename {
			out.Rename[k] = v
		}
	}

	out.Requires = override.Requires
	out.Extends = ""

	return out
}

// checkRequires validates the profile's version constraint against the
// running tool version using the Masterminds/semver library.
func checkRequires(name, constraint, actual string) error {
	if constraint == "" || actual == "" || actual == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("profile %q: invalid requires constraint %q: %w", name, constraint, err)
	}

	v, err := semver.NewVersion(actual)
	if err != nil {
		// Unparseable build version — skip the check.
		return nil
	}

	if !c.Check(v) {
		return fmt.Errorf("profile %q requires mixo %s, but this is %s", name, constraint, actual)
	}

	return nil
}
