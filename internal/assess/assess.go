// Package assess computes read-only data-quality diagnostics for a table:
// shape, dtypes, missingness, duplicate rows, and per-column descriptive
// statistics.
package assess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kheene145/ML-coursework/internal/stats"
	"github.com/Kheene145/ML-coursework/internal/table"
)

// Options controls assessment behavior.
type Options struct {
	// TopN limits the frequency table reported per categorical column.
	TopN int
}

// DefaultOptions returns reasonable defaults for quality assessment.
func DefaultOptions() Options {
	return Options{TopN: 5}
}

// Profile is the quality snapshot of a table. It is derived data: computing
// it never mutates the source table.
type Profile struct {
	Source     string
	Rows       int
	Cols       int
	Duplicates int
	Columns    []ColumnProfile
	Notes      []string
}

// ColumnProfile captures dtype, missingness, and summary statistics for one
// column. Numeric is nil for categorical columns.
type ColumnProfile struct {
	Name         string
	Kind         table.Kind
	MissingCount int
	MissingPct   float64
	Numeric      *stats.Summary
	Unique       int
	TopValues    []ValueCount
}

// ValueCount is one entry of a categorical frequency table.
type ValueCount struct {
	Value string
	Count int
}

// Run assesses the table and returns its profile. A table with zero columns
// yields a profile noting "no columns" rather than an error.
func Run(t *table.Table, opt Options) *Profile {
	p := &Profile{Rows: t.Nrow(), Cols: t.Ncol()}
	if t.Ncol() == 0 {
		p.Notes = append(p.Notes, "no columns")
		return p
	}
	p.Duplicates = t.DuplicateCount()

	topN := opt.TopN
	if topN <= 0 {
		topN = DefaultOptions().TopN
	}
	for _, c := range t.Columns() {
		cp := ColumnProfile{
			Name:         c.Name,
			Kind:         c.Kind,
			MissingCount: c.MissingCount(),
		}
		if t.Nrow() > 0 {
			cp.MissingPct = float64(cp.MissingCount) * 100 / float64(t.Nrow())
		}
		if c.Kind == table.Numeric {
			s := stats.Describe(c.NonMissing())
			cp.Numeric = &s
		} else {
			cp.Unique, cp.TopValues = frequencyTable(&c, topN)
		}
		p.Columns = append(p.Columns, cp)
	}
	return p
}

func frequencyTable(c *table.Column, topN int) (unique int, top []ValueCount) {
	counts := make(map[string]int)
	for i, v := range c.Strings {
		if c.Missing[i] {
			continue
		}
		counts[v]++
	}
	top = make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		top = append(top, ValueCount{Value: v, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count == top[j].Count {
			return top[i].Value < top[j].Value
		}
		return top[i].Count > top[j].Count
	})
	unique = len(top)
	if len(top) > topN {
		top = top[:topN]
	}
	return unique, top
}

// Markdown renders the profile as a compact report.
func (p *Profile) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if p.Source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", p.Source))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", p.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n", p.Cols))
	b.WriteString(fmt.Sprintf("Duplicate rows: %d\n", p.Duplicates))

	if len(p.Columns) > 0 {
		b.WriteString("\n[SCHEMA]\n")
		for _, c := range p.Columns {
			b.WriteString(fmt.Sprintf("- %s: %s (missing %d, %.1f%%)", c.Name, c.Kind, c.MissingCount, c.MissingPct))
			switch {
			case c.Numeric != nil:
				s := c.Numeric
				b.WriteString(fmt.Sprintf(" — count %d, mean %.4g, std %.4g, min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g",
					s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max))
			case len(c.TopValues) > 0:
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", kv.Value, kv.Count))
				}
				b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
			}
			b.WriteString("\n")
		}
	}
	if len(p.Notes) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, n := range p.Notes {
			b.WriteString("- ")
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	return b.String()
}
