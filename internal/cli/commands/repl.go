package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/leapframe/internal/cli/config"
	starctx "github.com/leapstack-labs/leapframe/internal/starlark"
	"github.com/leapstack-labs/leapframe/pkg/frame"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Bind columns interactively and inspect the frame",
		Long: `Start an interactive session. Each "name = expr" line binds one more
column; a bare expression is evaluated and previewed without binding.
Use .table to run validation and recycling on the bound columns and
print the resulting frame.`,
		Example: `  leapframe repl`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetCurrentConfig()
			return runREPL(cmd, cfg)
		},
	}
}

// replSession holds the growing binding scope of one REPL run.
type replSession struct {
	ev     *starctx.Evaluator
	names  []string
	values map[string]any
	format string
}

// bindLine matches "name = expr" (a single = not followed by =).
var bindLine = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*([^=].*)$`)

func runREPL(cmd *cobra.Command, cfg *config.Config) error {
	session := &replSession{
		ev:     starctx.NewEvaluator(starctx.WithVars(cfg.Vars)),
		values: make(map[string]any),
		format: cfg.OutputFormat,
	}

	// Project-local history next to the config file when there is one
	historyDir := "."
	if configFile := config.GetConfigFileUsed(); configFile != "" {
		historyDir = filepath.Dir(configFile)
	}
	historyFile := filepath.Join(historyDir, ".leapframe_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "leapframe> ",
		HistoryFile:     historyFile,
		AutoComplete:    replCompleter(session),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "LeapFrame REPL")
	_, _ = fmt.Fprintln(out, "Bind columns with \"name = expr\"; type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if session.handleDotCommand(cmd, line) {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		session.handleInput(cmd, line)
	}

	return nil
}

// handleInput binds "name = expr" lines and previews bare expressions.
func (s *replSession) handleInput(cmd *cobra.Command, line string) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	name := ""
	expr := line
	if m := bindLine.FindStringSubmatch(line); m != nil {
		name = m[1]
		expr = strings.TrimSpace(m[2])
	}

	v, err := s.ev.Eval(expr, s.scope())
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return
	}

	if name == "" {
		_, _ = fmt.Fprintf(out, "%v\n", v)
		return
	}

	if _, bound := s.values[name]; !bound {
		s.names = append(s.names, name)
	}
	s.values[name] = v
	_, _ = fmt.Fprintf(out, "bound %s\n", name)
}

// scope rebuilds the frame scope from the session bindings.
func (s *replSession) scope() *frame.Scope {
	scope := frame.NewScope()
	for _, name := range s.names {
		scope.Bind(name, s.values[name])
	}
	return scope
}

func (s *replSession) handleDotCommand(cmd *cobra.Command, line string) bool {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)
		return true

	case ".table":
		pairs := make([]frame.Pair, len(s.names))
		for i, name := range s.names {
			pairs[i] = frame.Pair{Name: name, Value: s.values[name]}
		}
		tbl, err := frame.FromColumns(pairs)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			return true
		}
		if err := renderFrame(out, tbl, s.format); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return true

	case ".cols":
		if len(s.names) == 0 {
			_, _ = fmt.Fprintln(out, "(no columns bound)")
			return true
		}
		for _, name := range s.names {
			_, _ = fmt.Fprintf(out, "  %s = %v\n", name, s.values[name])
		}
		return true

	case ".drop":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .drop <name>")
			return true
		}
		s.drop(parts[1])
		return true

	case ".clear":
		s.names = nil
		s.values = make(map[string]any)
		_, _ = fmt.Fprintln(out, "cleared")
		return true

	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func (s *replSession) drop(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .table          Validate, recycle and print the bound columns
  .cols           List bound columns and their values
  .drop <name>    Remove a bound column
  .clear          Remove all bound columns
  .help           Show this help message
  .quit / .exit   Exit the REPL

Tips:
  - "name = expr" binds a column; a bare expression just prints its value
  - Later expressions see earlier columns by name
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// replCompleter completes the dot-commands and the session's bound names.
func replCompleter(s *replSession) *readline.PrefixCompleter {
	boundNames := func(string) []string {
		return append([]string(nil), s.names...)
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".table"),
		readline.PcItem(".cols"),
		readline.PcItem(".drop", readline.PcItemDynamic(boundNames)),
		readline.PcItem(".clear"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItemDynamic(boundNames),
	)
}
