package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/mixo-go/mixo/internal/compose"
	"github.com/mixo-go/mixo/internal/config"
	"github.com/mixo-go/mixo/internal/logging"
	"github.com/mixo-go/mixo/internal/watch"
)

type watchOptions struct {
	composeOptions

	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <source-file>...",
		Short: "Recompose automatically when input files change",
		Long: `Watch monitors the target and source files and re-runs the
composition whenever one of them changes. Rapid changes are debounced
into a single run. Press Ctrl+C to stop.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, args, opts)
		},
	}

	registerComposeFlags(cmd, &opts.composeFlags)

	f := cmd.Flags()
	f.StringVarP(&opts.outputPath, "output", "o", "", "write each result to this file instead of stdout")
	f.StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml, json")
	f.DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "quiet period before recomposing")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, sources []string, opts *watchOptions) error {
	cfg := config.FromContext(ctx)

	runOpts, err := opts.toOptions(cfg, sources)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	watchOpts := watch.DefaultOptions()
	watchOpts.Files = append([]string{runOpts.TargetFile}, runOpts.SourceFiles...)
	watchOpts.Debounce = opts.debounce
	watchOpts.Logger = logging.FromContext(ctx)
	watchOpts.Out = cmd.ErrOrStderr()

	runFn := func(runCtx context.Context) (*watch.RunResult, error) {
		result, runErr := compose.Run(runCtx, runOpts)
		if runErr != nil {
			return nil, runErr
		}

		data, serErr := serialize(result, opts.format)
		if serErr != nil {
			return nil, serErr
		}

		if writeErr := writeOutput(cmd, data, opts.format, opts.outputPath); writeErr != nil {
			return nil, writeErr
		}

		return &watch.RunResult{
			Properties: len(result),
			OutputPath: opts.outputPath,
		}, nil
	}

	if err := watch.Run(ctx, watchOpts, runFn); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	return nil
}
