package frame

// Pair is one entry of the ordered name->value mapping handed to
// FromColumns. Value is a raw evaluated value; classification into a
// Column happens during validation.
type Pair struct {
	Name  string
	Value any
}

type namedColumn struct {
	name string
	col  Column
}

// Table is an ordered collection of equal-length, uniquely named Columns.
// Tables are only produced by Build and FromColumns; the unexported marker
// is what IsTable dispatches on, so a hand-assembled Table value never
// passes the predicate.
type Table struct {
	cols   []namedColumn
	rows   int
	tagged bool
}

// FromColumns validates and recycles an already-evaluated ordered mapping
// and returns the finished Table. This is the entry point an expression
// engine calls once it has resolved its column expressions; Build calls it
// internally after binding.
func FromColumns(cols []Pair) (*Table, error) {
	nc, err := validate(cols)
	if err != nil {
		return nil, err
	}
	nc, rows, err := recycle(nc)
	if err != nil {
		return nil, err
	}
	return &Table{cols: nc, rows: rows, tagged: true}, nil
}

// IsTable reports whether v is a Table produced by this package.
func IsTable(v any) bool {
	t, ok := v.(*Table)
	return ok && t != nil && t.tagged
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.cols) }

// NumRows returns the shared column length.
func (t *Table) NumRows() int { return t.rows }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.name == name {
			return c.col, true
		}
	}
	return Column{}, false
}

// ColumnAt returns the column at index i in table order.
func (t *Table) ColumnAt(i int) Column { return t.cols[i].col }

// NameAt returns the name of the column at index i.
func (t *Table) NameAt(i int) string { return t.cols[i].name }

// Pairs returns the table's columns as an ordered mapping, suitable for
// feeding back into FromColumns.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, len(t.cols))
	for i, c := range t.cols {
		pairs[i] = Pair{Name: c.name, Value: c.col}
	}
	return pairs
}
