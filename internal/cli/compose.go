package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mixo-go/mixo/internal/compose"
	"github.com/mixo-go/mixo/internal/config"
	"github.com/mixo-go/mixo/internal/output"
)

type composeOptions struct {
	composeFlags

	// Output file path; empty writes to stdout.
	outputPath string

	// Output format: yaml (default) or json.
	format string
}

func newComposeCommand() *cobra.Command {
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose <source-file>...",
		Short: "Compose source objects onto a target object",
		Long: `Compose copies selected properties from the source files onto the
target object and prints the result.

Every YAML document in every source file is applied in order. Without
--select, --pattern, or --rename, all source properties are copied.

Exit codes:
  0  Success
  1  Composition error (missing property, collision, bad input)
  2  Invalid arguments`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd.Context(), cmd, args, opts)
		},
	}

	registerComposeFlags(cmd, &opts.composeFlags)

	f := cmd.Flags()
	f.StringVarP(&opts.outputPath, "output", "o", "", "write the result to this file instead of stdout")
	f.StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml, json")

	return cmd
}

func runCompose(ctx context.Context, cmd *cobra.Command, sources []string, opts *composeOptions) error {
	cfg := config.FromContext(ctx)

	runOpts, err := opts.toOptions(cfg, sources)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	result, err := compose.Run(ctx, runOpts)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	data, err := serialize(result, opts.format)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	return writeOutput(cmd, data, opts.format, opts.outputPath)
}

// serialize renders a composed object in the requested format.
func serialize(obj map[string]any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return output.Serialize(obj, output.DefaultSerializeOptions())
	case "json":
		return output.SerializeJSON(obj, output.DefaultSerializeOptions())
	default:
		return nil, fmt.Errorf("unknown format %q (available: json, yaml)", format)
	}
}

// writeOutput sends serialized bytes to the destination chosen by the
// format registry. Empty path means the command's stdout.
func writeOutput(cmd *cobra.Command, data []byte, format, path string) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return &ExitError{Code: 1, Err: err}
		}

		return nil
	}

	factory, err := output.DefaultRegistry().Writer(format)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	if err := factory(path).Write(data); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	return nil
}
