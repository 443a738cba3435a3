package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the semantic type of a column.
type Kind string

const (
	Numeric     Kind = "numeric"
	Categorical Kind = "categorical"
)

// Column is an ordered sequence of values of a single kind. Numeric columns
// store values in Floats, categorical columns in Strings; Missing marks
// per-row missing entries in either case.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
	Missing []bool
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// MissingCount returns how many entries are marked missing.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// NonMissing returns the non-missing numeric values in row order.
// It returns nil for categorical columns.
func (c *Column) NonMissing() []float64 {
	if c.Kind != Numeric {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Levels returns the distinct non-missing string values in first-seen order.
// It returns nil for numeric columns.
func (c *Column) Levels() []string {
	if c.Kind != Categorical {
		return nil
	}
	seen := make(map[string]struct{}, len(c.Strings))
	var out []string
	for i, v := range c.Strings {
		if c.Missing[i] {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Floats != nil {
		out.Floats = append([]float64(nil), c.Floats...)
	}
	if c.Strings != nil {
		out.Strings = append([]string(nil), c.Strings...)
	}
	if c.Missing != nil {
		out.Missing = append([]bool(nil), c.Missing...)
	}
	return out
}

// Table is an ordered sequence of named columns with a uniform row count.
// Column names are unique; rows are positionally aligned.
type Table struct {
	cols []Column
}

// New builds a table from columns, validating name uniqueness and uniform
// row counts. Missing masks are allocated when absent.
func New(cols ...Column) (*Table, error) {
	t := &Table{}
	for _, c := range cols {
		if err := t.AppendColumn(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AppendColumn adds a column to the right of the table.
func (t *Table) AppendColumn(c Column) error {
	if c.Name == "" {
		return fmt.Errorf("column has no name")
	}
	if _, ok := t.Col(c.Name); ok {
		return fmt.Errorf("duplicate column name %q", c.Name)
	}
	switch c.Kind {
	case Numeric, Categorical:
	default:
		return fmt.Errorf("column %q: unknown kind %q", c.Name, c.Kind)
	}
	if c.Missing == nil {
		c.Missing = make([]bool, c.Len())
	}
	if len(c.Missing) != c.Len() {
		return fmt.Errorf("column %q: missing mask length %d != %d rows", c.Name, len(c.Missing), c.Len())
	}
	if len(t.cols) > 0 && c.Len() != t.Nrow() {
		return fmt.Errorf("column %q: %d rows, table has %d", c.Name, c.Len(), t.Nrow())
	}
	t.cols = append(t.cols, c)
	return nil
}

// Nrow returns the number of rows.
func (t *Table) Nrow() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Ncol returns the number of columns.
func (t *Table) Ncol() int { return len(t.cols) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}
	return out
}

// Col returns a pointer to the named column, or false when absent.
func (t *Table) Col(name string) (*Column, bool) {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return &t.cols[i], true
		}
	}
	return nil, false
}

// Columns returns the backing column slice. Callers must not reshape it;
// use Clone for a mutable copy.
func (t *Table) Columns() []Column { return t.cols }

// NumericNames returns the names of numeric columns in order.
func (t *Table) NumericNames() []string {
	var out []string
	for i := range t.cols {
		if t.cols[i].Kind == Numeric {
			out = append(out, t.cols[i].Name)
		}
	}
	return out
}

// CategoricalNames returns the names of categorical columns in order.
func (t *Table) CategoricalNames() []string {
	var out []string
	for i := range t.cols {
		if t.cols[i].Kind == Categorical {
			out = append(out, t.cols[i].Name)
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{cols: make([]Column, len(t.cols))}
	for i := range t.cols {
		out.cols[i] = t.cols[i].Clone()
	}
	return out
}

// Filter returns a new table containing only the rows where keep is true.
func (t *Table) Filter(keep []bool) (*Table, error) {
	if len(keep) != t.Nrow() {
		return nil, fmt.Errorf("filter mask has %d entries, table has %d rows", len(keep), t.Nrow())
	}
	out := &Table{cols: make([]Column, len(t.cols))}
	for i := range t.cols {
		src := &t.cols[i]
		dst := Column{Name: src.Name, Kind: src.Kind}
		for r := 0; r < src.Len(); r++ {
			if !keep[r] {
				continue
			}
			if src.Kind == Numeric {
				dst.Floats = append(dst.Floats, src.Floats[r])
			} else {
				dst.Strings = append(dst.Strings, src.Strings[r])
			}
			dst.Missing = append(dst.Missing, src.Missing[r])
		}
		if dst.Missing == nil {
			dst.Missing = []bool{}
			if dst.Kind == Numeric {
				dst.Floats = []float64{}
			} else {
				dst.Strings = []string{}
			}
		}
		out.cols[i] = dst
	}
	return out, nil
}

// DropColumn removes the named column in place.
func (t *Table) DropColumn(name string) error {
	for i := range t.cols {
		if t.cols[i].Name == name {
			t.cols = append(t.cols[:i], t.cols[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("column %q not found", name)
}

// RowKey returns a canonical string identity for row i across all columns.
// Two rows with equal keys are exact duplicates.
func (t *Table) RowKey(i int) string {
	var b strings.Builder
	for ci := range t.cols {
		c := &t.cols[ci]
		if ci > 0 {
			b.WriteByte('\x1f')
		}
		if c.Missing[i] {
			b.WriteByte('\x00')
			continue
		}
		if c.Kind == Numeric {
			b.WriteString(strconv.FormatFloat(c.Floats[i], 'g', -1, 64))
		} else {
			b.WriteString(c.Strings[i])
		}
	}
	return b.String()
}

// DuplicateCount returns the number of rows that exactly duplicate an
// earlier row.
func (t *Table) DuplicateCount() int {
	seen := make(map[string]struct{}, t.Nrow())
	dup := 0
	for i := 0; i < t.Nrow(); i++ {
		k := t.RowKey(i)
		if _, ok := seen[k]; ok {
			dup++
		} else {
			seen[k] = struct{}{}
		}
	}
	return dup
}

// Records renders the table as a header row followed by one string row per
// observation, missing entries as empty strings. Suitable for CSV output.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, t.Nrow()+1)
	out = append(out, t.Names())
	for r := 0; r < t.Nrow(); r++ {
		row := make([]string, len(t.cols))
		for ci := range t.cols {
			c := &t.cols[ci]
			if c.Missing[r] {
				continue
			}
			if c.Kind == Numeric {
				row[ci] = strconv.FormatFloat(c.Floats[r], 'g', -1, 64)
			} else {
				row[ci] = c.Strings[r]
			}
		}
		out = append(out, row)
	}
	return out
}
