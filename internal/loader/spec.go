// Package loader reads frame spec documents: YAML files declaring the
// ordered column definitions (and optional vars) a frame is built from.
package loader

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/leapstack-labs/leapframe/pkg/frame"
	"gopkg.in/yaml.v3"
)

// ColumnSpec is one entry of a frame spec's columns list. Name may be
// empty; the frame then derives it from the expression text.
type ColumnSpec struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// Spec is a parsed frame spec document.
type Spec struct {
	Path    string
	Vars    map[string]any
	Columns []ColumnSpec
}

// Definitions maps the spec's columns to frame definitions, in document
// order.
func (s *Spec) Definitions() []frame.Definition {
	defs := make([]frame.Definition, len(s.Columns))
	for i, c := range s.Columns {
		defs[i] = frame.Definition{Name: c.Name, Expr: c.Expr}
	}
	return defs
}

// Load reads and parses a frame spec file.
func Load(path string) (*Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	return Parse(content, path)
}

// Parse parses frame spec content. The path is used for error reporting
// only.
func Parse(content []byte, path string) (*Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &SpecParseError{File: path, Line: yamlErrorLine(err), Message: err.Error()}
	}

	spec := &Spec{Path: path}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document: a spec with no columns builds the empty frame
		return spec, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &SpecParseError{File: path, Line: root.Line, Message: "spec must be a mapping"}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]

		switch key.Value {
		case "vars":
			if err := val.Decode(&spec.Vars); err != nil {
				return nil, &SpecParseError{File: path, Line: val.Line, Message: "vars must be a mapping"}
			}
		case "columns":
			if err := val.Decode(&spec.Columns); err != nil {
				return nil, &SpecParseError{File: path, Line: val.Line, Message: "columns must be a list of {name, expr} entries"}
			}
		default:
			return nil, &UnknownFieldError{File: path, Field: key.Value}
		}
	}

	for i, c := range spec.Columns {
		if c.Expr == "" {
			return nil, &SpecParseError{File: path, Message: fmt.Sprintf("column %d: missing expr", i)}
		}
	}

	return spec, nil
}

// SpecParseError represents a frame spec parsing error.
type SpecParseError struct {
	File    string
	Line    int
	Message string
}

func (e *SpecParseError) Error() string {
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// UnknownFieldError represents an error for unknown spec fields.
type UnknownFieldError struct {
	File  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q in frame spec (expected \"vars\" or \"columns\")", e.Field)
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}

var yamlLineRe = regexp.MustCompile(`line (\d+):`)

// yamlErrorLine extracts the line number a yaml error mentions, 0 if none.
func yamlErrorLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
