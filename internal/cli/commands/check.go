package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/leapstack-labs/leapframe/internal/cli/config"
	"github.com/leapstack-labs/leapframe/internal/loader"
	starctx "github.com/leapstack-labs/leapframe/internal/starlark"
	"github.com/leapstack-labs/leapframe/pkg/frame"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [spec]",
		Short: "Validate a frame spec without printing the frame",
		Long: `Run the full construction pipeline on a frame spec and report every
problem a check finds, instead of printing the frame.

Problems of one kind are reported together: a spec with three unnamed
columns lists all three positions in a single run.`,
		Example: `  leapframe check
  leapframe check orders.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			path := cfg.Spec
			if len(args) > 0 {
				path = args[0]
			}
			return runCheck(cmd.OutOrStdout(), path, cfg.Vars)
		},
	}
}

func runCheck(w io.Writer, path string, vars map[string]any) error {
	tbl, err := buildFrame(path, vars)
	if err != nil {
		for _, line := range explain(err) {
			_, _ = fmt.Fprintf(w, "  %s\n", line)
		}
		return fmt.Errorf("%s: invalid frame spec", path)
	}

	_, _ = fmt.Fprintf(w, "OK: %d columns x %d rows\n", tbl.NumColumns(), tbl.NumRows())
	for i, name := range tbl.ColumnNames() {
		_, _ = fmt.Fprintf(w, "  %s <%s>\n", name, tbl.ColumnAt(i).Kind())
	}
	return nil
}

// explain maps a pipeline error to one report line per offending column.
func explain(err error) []string {
	var unnamed *frame.UnnamedColumnError
	var dup *frame.DuplicateNameError
	var notVector *frame.NotVectorError
	var localTime *frame.LocalTimeError
	var mismatch *frame.LengthMismatchError
	var evalErr *starctx.EvalError
	var specErr *loader.SpecParseError
	var unknownField *loader.UnknownFieldError

	switch {
	case errors.As(err, &unnamed):
		lines := make([]string, len(unnamed.Positions))
		for i, pos := range unnamed.Positions {
			lines[i] = fmt.Sprintf("column %d: missing name", pos)
		}
		return lines

	case errors.As(err, &dup):
		lines := make([]string, len(dup.Names))
		for i, name := range dup.Names {
			lines[i] = fmt.Sprintf("column %q: name already used", name)
		}
		return lines

	case errors.As(err, &notVector):
		lines := make([]string, len(notVector.Names))
		for i, name := range notVector.Names {
			class := "unknown"
			if i < len(notVector.Classes) {
				class = notVector.Classes[i]
			}
			lines[i] = fmt.Sprintf("column %q: not a 1d vector (%s)", name, class)
		}
		return lines

	case errors.As(err, &localTime):
		lines := make([]string, len(localTime.Names))
		for i, name := range localTime.Names {
			lines[i] = fmt.Sprintf("column %q: broken-down local time, use an absolute instant", name)
		}
		return lines

	case errors.As(err, &mismatch):
		lines := make([]string, len(mismatch.Names))
		for i, name := range mismatch.Names {
			length := -1
			if i < len(mismatch.Lengths) {
				length = mismatch.Lengths[i]
			}
			lines[i] = fmt.Sprintf("column %q: length %d cannot recycle to %d rows", name, length, mismatch.Target)
		}
		return lines

	case errors.As(err, &evalErr):
		return []string{fmt.Sprintf("expression %q: %s", evalErr.Expr, evalErr.Message)}

	case errors.As(err, &specErr), errors.As(err, &unknownField):
		return []string{err.Error()}

	default:
		return []string{err.Error()}
	}
}
