// Package commands implements the LeapFrame CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapframe/pkg/frame"
)

// renderFrame writes a frame in the requested format.
func renderFrame(w io.Writer, t *frame.Table, format string) error {
	switch format {
	case "json":
		return renderJSON(w, t)
	case "csv":
		return renderCSV(w, t)
	case "md", "markdown":
		return renderMarkdown(w, t)
	default:
		return renderTable(w, t)
	}
}

func renderTable(w io.Writer, t *frame.Table) error {
	if t.NumColumns() == 0 {
		_, _ = fmt.Fprintln(w, "(empty frame)")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	names := t.ColumnNames()
	headerRow := make(table.Row, len(names))
	for i, name := range names {
		headerRow[i] = fmt.Sprintf("%s <%s>", name, t.ColumnAt(i).Kind())
	}
	tw.AppendHeader(headerRow)

	for r := 0; r < t.NumRows(); r++ {
		row := make(table.Row, len(names))
		for c := range names {
			row[c] = formatValue(t.ColumnAt(c).At(r))
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", t.NumRows())
	return nil
}

func renderJSON(w io.Writer, t *frame.Table) error {
	names := t.ColumnNames()
	rows := make([]map[string]any, t.NumRows())
	for r := 0; r < t.NumRows(); r++ {
		row := make(map[string]any, len(names))
		for c, name := range names {
			row[name] = t.ColumnAt(c).At(r)
		}
		rows[r] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderCSV(w io.Writer, t *frame.Table) error {
	names := t.ColumnNames()
	_, _ = fmt.Fprintln(w, strings.Join(names, ","))

	for r := 0; r < t.NumRows(); r++ {
		values := make([]string, len(names))
		for c := range names {
			values[c] = escapeCSV(formatValue(t.ColumnAt(c).At(r)))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown(w io.Writer, t *frame.Table) error {
	names := t.ColumnNames()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "(empty frame)")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(names, " | "))
	seps := make([]string, len(names))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for r := 0; r < t.NumRows(); r++ {
		values := make([]string, len(names))
		for c := range names {
			values[c] = formatValue(t.ColumnAt(c).At(r))
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
