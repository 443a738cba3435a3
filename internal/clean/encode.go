package clean

import (
	"fmt"

	"github.com/Kheene145/ML-coursework/internal/table"
)

// Thresholds are the cardinality cutoffs of the encoding policy: exactly
// Binary distinct values gets binary encoding, up to Label gets label
// encoding, anything above gets one-hot with drop-first.
type Thresholds struct {
	Binary int `yaml:"binary"`
	Label  int `yaml:"label"`
}

// DefaultThresholds returns the 2/10 policy cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Binary: 2, Label: 10}
}

// Encoding methods.
const (
	MethodBinary = "binary"
	MethodLabel  = "label"
	MethodOneHot = "onehot"
)

// ColumnEncoding records how one categorical column was encoded. Mapping is
// set for binary/label encodings and supports inverse lookup; one-hot
// records the category list and the dropped first category instead, which is
// not enough to invert on its own.
type ColumnEncoding struct {
	Method     string         `yaml:"method"`
	Mapping    map[string]int `yaml:"mapping,omitempty"`
	Categories []string       `yaml:"categories,omitempty"`
	Dropped    string         `yaml:"dropped,omitempty"`
}

// Decode returns the original category for a code, for binary/label
// encodings only.
func (e ColumnEncoding) Decode(code int) (string, bool) {
	for v, c := range e.Mapping {
		if c == code {
			return v, true
		}
	}
	return "", false
}

// EncodingMap maps column name to the encoding applied to it.
type EncodingMap map[string]ColumnEncoding

// Encode converts every categorical column to a numeric representation using
// the cardinality policy: distinct values are taken in first-seen order, so
// codes are deterministic for a given row order. One-hot indicator columns
// are named <column>_<value> and appended; the original column is removed.
// The input is not mutated.
func Encode(t *table.Table, th Thresholds) (*table.Table, EncodingMap, error) {
	if th.Binary <= 0 || th.Label < th.Binary {
		return nil, nil, fmt.Errorf("invalid encoding thresholds binary=%d label=%d", th.Binary, th.Label)
	}
	out := t.Clone()
	enc := make(EncodingMap)

	for _, name := range t.CategoricalNames() {
		c, _ := out.Col(name)
		levels := c.Levels()
		n := len(levels)
		if n == 0 {
			continue
		}
		switch {
		case n == th.Binary, n <= th.Label:
			mapping := make(map[string]int, n)
			for i, v := range levels {
				mapping[v] = i
			}
			codes := make([]float64, c.Len())
			for i, v := range c.Strings {
				if !c.Missing[i] {
					codes[i] = float64(mapping[v])
				}
			}
			c.Kind = table.Numeric
			c.Floats = codes
			c.Strings = nil
			method := MethodLabel
			if n == th.Binary {
				method = MethodBinary
			}
			enc[name] = ColumnEncoding{Method: method, Mapping: mapping}
		default:
			// Drop-first: the first-seen category maps to all-zero
			// indicators, as do missing entries.
			for _, level := range levels[1:] {
				ind := table.Column{
					Name:    name + "_" + level,
					Kind:    table.Numeric,
					Floats:  make([]float64, c.Len()),
					Missing: make([]bool, c.Len()),
				}
				for i, v := range c.Strings {
					if !c.Missing[i] && v == level {
						ind.Floats[i] = 1
					}
				}
				if err := out.AppendColumn(ind); err != nil {
					return nil, nil, fmt.Errorf("one-hot %q: %w", name, err)
				}
			}
			if err := out.DropColumn(name); err != nil {
				return nil, nil, err
			}
			enc[name] = ColumnEncoding{
				Method:     MethodOneHot,
				Categories: levels,
				Dropped:    levels[0],
			}
		}
	}
	return out, enc, nil
}
