// Package starlark adapts go.starlark.net as the frame expression engine.
package starlark

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapframe/pkg/frame"
	starmath "go.starlark.net/lib/math"
	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
)

// Evaluator evaluates column expressions with Starlark. It satisfies
// frame.Evaluator: each Eval sees the configured vars plus every column
// bound earlier in the same construction call, so expressions like
// "[v * 2 for v in price]" reference prior columns by name.
type Evaluator struct {
	vars   map[string]any
	logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithVars exposes constant globals to every expression. Vars shadowed by
// a column binding of the same name lose; columns win.
func WithVars(vars map[string]any) Option {
	return func(e *Evaluator) {
		e.vars = vars
	}
}

// WithLogger sets a logger for per-expression debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// NewEvaluator creates a Starlark evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Predeclared returns the globals available to every expression: the
// Starlark time module (absolute instants) and math module.
func Predeclared() starlark.StringDict {
	return starlark.StringDict{
		"time": startime.Module,
		"math": starmath.Module,
	}
}

// Eval evaluates one column expression against the scope.
func (e *Evaluator) Eval(expr string, scope *frame.Scope) (any, error) {
	globals, err := e.globalsFor(scope)
	if err != nil {
		return nil, &EvalError{Expr: expr, Message: err.Error(), Cause: err}
	}

	thread := &starlark.Thread{
		Name: "frame",
		Print: func(_ *starlark.Thread, _ string) {
			// Column expressions should not print
		},
	}

	v, err := starlark.Eval(thread, "<expr>", expr, globals) //nolint:staticcheck // SA1019: will migrate to EvalOptions later
	if err != nil {
		return nil, &EvalError{Expr: expr, Message: evalMessage(err), Cause: err}
	}

	gv, err := ToGo(v)
	if err != nil {
		return nil, &EvalError{Expr: expr, Message: err.Error(), Cause: err}
	}

	if e.logger != nil {
		e.logger.Debug("evaluated column expression", "expr", expr, "bound", scope.Len())
	}
	return gv, nil
}

// globalsFor combines predeclared globals, vars, and the scope bindings
// (scope wins on name collisions).
func (e *Evaluator) globalsFor(scope *frame.Scope) (starlark.StringDict, error) {
	globals := Predeclared()

	for k, v := range e.vars {
		sv, err := GoToStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("var %q: %w", k, err)
		}
		globals[k] = sv
	}

	for _, name := range scope.Names() {
		v, _ := scope.Lookup(name)
		sv, err := GoToStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		globals[name] = sv
	}

	return globals, nil
}

// evalMessage extracts the message from a Starlark error, dropping the
// backtrace an *starlark.EvalError prepends.
func evalMessage(err error) string {
	var ee *starlark.EvalError
	if errors.As(err, &ee) {
		return ee.Msg
	}
	return err.Error()
}

// EvalError is the error surfaced when a column expression fails to
// evaluate. frame.Build propagates it to the caller unchanged.
type EvalError struct {
	Expr    string
	Message string
	Cause   error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("error evaluating %q: %s", e.Expr, e.Message)
}

func (e *EvalError) Unwrap() error { return e.Cause }
