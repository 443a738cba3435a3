package clean

import (
	"github.com/Kheene145/ML-coursework/internal/stats"
	"github.com/Kheene145/ML-coursework/internal/table"
)

// FillValue records which value filled a column's missing entries.
type FillValue struct {
	Column string
	Kind   table.Kind
	Number float64 // median, for numeric columns
	Label  string  // mode, for categorical columns
	Filled int
}

// Impute fills missing values per column: numeric columns with the median of
// their non-missing values, categorical columns with the most frequent
// non-missing value (ties broken by first-encountered order). The input is
// not mutated. A column whose values are all missing is skipped with a
// typed per-column error; its siblings are still filled and do not block on
// it.
func Impute(t *table.Table) (*table.Table, []FillValue, []*ColumnError) {
	out := t.Clone()
	var fills []FillValue
	var skipped []*ColumnError

	for _, name := range out.Names() {
		c, _ := out.Col(name)
		miss := c.MissingCount()
		if miss == 0 {
			continue
		}
		if miss == c.Len() {
			skipped = append(skipped, &ColumnError{Column: name, Err: ErrAllMissing})
			continue
		}
		fv := FillValue{Column: name, Kind: c.Kind, Filled: miss}
		if c.Kind == table.Numeric {
			fv.Number = stats.Median(c.NonMissing())
			for i := range c.Floats {
				if c.Missing[i] {
					c.Floats[i] = fv.Number
					c.Missing[i] = false
				}
			}
		} else {
			fv.Label = mode(c)
			for i := range c.Strings {
				if c.Missing[i] {
					c.Strings[i] = fv.Label
					c.Missing[i] = false
				}
			}
		}
		fills = append(fills, fv)
	}
	return out, fills, skipped
}

// mode returns the most frequent non-missing value; on a tie the value seen
// first wins.
func mode(c *table.Column) string {
	counts := make(map[string]int)
	var order []string
	for i, v := range c.Strings {
		if c.Missing[i] {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
