package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mixo-go/mixo/internal/compose"
	"github.com/mixo-go/mixo/internal/config"
	"github.com/mixo-go/mixo/internal/profile"
	"github.com/mixo-go/mixo/internal/version"
)

// composeFlags holds the flags shared by compose, plan, and watch.
type composeFlags struct {
	target       string
	selects      []string
	pattern      string
	renames      []string
	method       string
	profileName  string
	profilesFile string
}

// registerComposeFlags attaches the shared composition flags to cmd.
func registerComposeFlags(cmd *cobra.Command, flags *composeFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.target, "target", "t", "", "YAML file holding the target object (required)")
	f.StringArrayVarP(&flags.selects, "select", "s", nil, "property to select; prefix with ! to negate, # to allow overwrite")
	f.StringVarP(&flags.pattern, "pattern", "p", "", "regular expression selecting source properties")
	f.StringArrayVar(&flags.renames, "rename", nil, "rename a property, as from=to")
	f.StringVarP(&flags.method, "method", "m", "", "composition method: with, withDelegate (default: with)")
	f.StringVar(&flags.profileName, "profile", "", "named composition profile to apply")
	f.StringVar(&flags.profilesFile, "profiles-file", "", "YAML file with custom profile definitions")

	_ = cmd.MarkFlagRequired("target")
}

// toOptions resolves the flags (and an optional profile) into compose
// options, layering explicit flags over the profile's rules.
func (flags *composeFlags) toOptions(cfg *config.Config, sources []string) (compose.Options, error) {
	opts := compose.Options{
		TargetFile:      flags.target,
		SourceFiles:     sources,
		Select:          flags.selects,
		Pattern:         flags.pattern,
		Method:          flags.method,
		StrictMissing:   cfg.StrictMissing,
		StrictCollision: cfg.StrictCollision,
	}

	if flags.profileName != "" {
		p, err := resolveProfile(flags.profileName, flags.profilesFile)
		if err != nil {
			return compose.Options{}, err
		}

		opts.Select = append(append([]string{}, p.Select...), opts.Select...)

		if opts.Pattern == "" {
			opts.Pattern = p.Pattern
		}

		if opts.Method == "" {
			opts.Method = p.Method
		}

		if len(p.Rename) > 0 {
			opts.Rename = make(map[string]string, len(p.Rename))
			for k, v := range p.Rename {
				opts.Rename[k] = v
			}
		}
	}

	for _, r := range flags.renames {
		from, to, ok := strings.Cut(r, "=")
		if !ok || from == "" || to == "" {
			return compose.Options{}, fmt.Errorf("invalid --rename %q: expected from=to", r)
		}

		if opts.Rename == nil {
			opts.Rename = make(map[string]string)
		}

		opts.Rename[from] = to
	}

	return opts, nil
}

// resolveProfile loads custom profiles (when a file is given) and
// resolves the named profile against them and the built-ins.
func resolveProfile(name, profilesFile string) (profile.Profile, error) {
	var custom map[string]profile.Profile

	if profilesFile != "" {
		data, err := os.ReadFile(profilesFile)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("reading profiles file: %w", err)
		}

		custom, err = profile.Parse(data)
		if err != nil {
			return profile.Profile{}, err
		}
	}

	return profile.Resolve(name, custom, version.GetInfo().Version)
}
