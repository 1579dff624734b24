package commands

import (
	"io"
	"log/slog"

	"github.com/leapstack-labs/leapframe/internal/cli/config"
	"github.com/leapstack-labs/leapframe/internal/loader"
	starctx "github.com/leapstack-labs/leapframe/internal/starlark"
	"github.com/leapstack-labs/leapframe/pkg/frame"
	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build [spec]",
		Short: "Build a frame from a spec file and print it",
		Long: `Evaluate the column expressions of a frame spec, left to right, and
print the resulting frame.

Each expression runs in a scope containing every column defined before
it, plus any vars from the spec file and leapframe.yaml.`,
		Example: `  leapframe build
  leapframe build orders.yaml
  leapframe build --output json orders.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			path := cfg.Spec
			if len(args) > 0 {
				path = args[0]
			}

			tbl, err := buildFrame(path, cfg.Vars)
			if err != nil {
				return err
			}
			return renderFrame(cmd.OutOrStdout(), tbl, cfg.OutputFormat)
		},
	}
}

// buildFrame loads a spec file and runs the construction pipeline.
// Spec vars override config vars of the same name.
func buildFrame(path string, configVars map[string]any) (*frame.Table, error) {
	spec, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]any, len(configVars)+len(spec.Vars))
	for k, v := range configVars {
		vars[k] = v
	}
	for k, v := range spec.Vars {
		vars[k] = v
	}

	ev := starctx.NewEvaluator(
		starctx.WithVars(vars),
		starctx.WithLogger(slog.Default()),
	)
	return frame.Build(spec.Definitions(), ev)
}

// buildAndRender is the build pipeline with output, shared with tests.
func buildAndRender(w io.Writer, path string, vars map[string]any, format string) error {
	tbl, err := buildFrame(path, vars)
	if err != nil {
		return err
	}
	return renderFrame(w, tbl, format)
}
