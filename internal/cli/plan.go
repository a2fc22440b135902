package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mixo-go/mixo/internal/compose"
	"github.com/mixo-go/mixo/internal/config"
	"github.com/mixo-go/mixo/internal/object"
	"github.com/mixo-go/mixo/internal/plan"
)

type planOptions struct {
	composeFlags

	// exitCode makes the command exit 3 when differences exist.
	exitCode bool
}

func newPlanCommand() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <source-file>...",
		Short: "Preview a composition as a diff without applying it",
		Long: `Plan runs the composition against a copy of the target and prints a
unified diff between the original and composed serializations. The
target file is never modified.

Exit codes:
  0  Success
  1  Composition error
  2  Invalid arguments
  3  Differences found (with --exit-code)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.Context(), cmd, args, opts)
		},
	}

	registerComposeFlags(cmd, &opts.composeFlags)

	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "exit with code 3 when differences are found")

	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, sources []string, opts *planOptions) error {
	cfg := config.FromContext(ctx)

	runOpts, err := opts.toOptions(cfg, sources)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	target, err := compose.LoadObject(runOpts.TargetFile)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	var allSources []object.Object

	for _, path := range runOpts.SourceFiles {
		docs, loadErr := compose.LoadObjects(path)
		if loadErr != nil {
			return &ExitError{Code: 1, Err: loadErr}
		}

		allSources = append(allSources, docs...)
	}

	result, err := plan.Run(target, func(copied object.Object) error {
		return compose.Apply(ctx, copied, allSources, runOpts)
	}, plan.DefaultDiffOptions())
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	plan.WriteDiff(cmd.OutOrStdout(), result.Diff, !cfg.NoColor)

	if opts.exitCode && result.Diff.HasDifferences {
		return &ExitError{Code: 3, Err: fmt.Errorf("differences found")}
	}

	return nil
}
