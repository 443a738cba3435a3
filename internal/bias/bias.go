// Package bias quantifies distribution shape and categorical bias relative
// to a binary target: global class balance, per-category positive-outcome
// rates from row-normalized cross-tabulations, and a disparity flag per
// feature.
package bias

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Kheene145/ML-coursework/internal/stats"
	"github.com/Kheene145/ML-coursework/internal/table"
)

// Options controls the analysis.
type Options struct {
	// TargetColumn names the binary outcome column. Required.
	TargetColumn string
	// PositiveLabel is the target value counted as the positive outcome.
	// When empty, a heuristic picks a label containing "approve" (else the
	// alphabetically first), and the report carries a warning: results are
	// only trustworthy with an explicit label.
	PositiveLabel string
	// BiasThreshold is the max-minus-min rate spread, in percentage points,
	// above which a feature is flagged. Zero flags any nonzero spread;
	// callers wanting the stock cutoff start from DefaultOptions.
	BiasThreshold float64
	// ImbalanceThreshold is the max/min class-count ratio above which the
	// target is flagged as imbalanced.
	ImbalanceThreshold float64
}

// DefaultOptions returns the default thresholds: 15 points and 1.5:1.
func DefaultOptions() Options {
	return Options{BiasThreshold: 15, ImbalanceThreshold: 1.5}
}

// ClassCount is one target class with its share of rows.
type ClassCount struct {
	Label string
	Count int
	Pct   float64
}

// ClassBalance summarizes the target distribution.
type ClassBalance struct {
	Target         string
	Classes        []ClassCount // ordered by count, descending
	ImbalanceRatio float64
	Imbalanced     bool
}

// CategoryRate is one category of a feature with its positive-outcome rate.
type CategoryRate struct {
	Category     string
	Count        int
	PositiveRate float64 // percentage
}

// FeatureBias is the per-feature crosstab result: rates per category, the
// max-minus-min spread, and whether it crossed the threshold.
type FeatureBias struct {
	Feature  string
	Unique   int
	Rates    []CategoryRate
	Diff     float64
	Detected bool
}

// Distribution describes the shape of one numeric column.
type Distribution struct {
	Column     string
	Summary    stats.Summary
	MissingPct float64
	Shape      string
	Likely     string
}

// Report is the full analysis result handed to the renderer.
type Report struct {
	Source        string
	Rows          int
	Columns       int
	Balance       ClassBalance
	PositiveLabel string
	Heuristic     bool // positive label was guessed, not configured
	Distributions []Distribution
	Features      []FeatureBias
	Warnings      []string
}

// Analyze runs the distribution and bias analysis over the raw table. The
// target column must exist and be categorical; its absence is a named
// failure so the caller can skip this stage without touching earlier ones.
func Analyze(t *table.Table, opt Options) (*Report, error) {
	if opt.TargetColumn == "" {
		return nil, fmt.Errorf("target column not configured")
	}
	target, ok := t.Col(opt.TargetColumn)
	if !ok {
		return nil, fmt.Errorf("target column %q not found", opt.TargetColumn)
	}
	if target.Kind != table.Categorical {
		return nil, fmt.Errorf("target column %q is %s, want categorical", opt.TargetColumn, target.Kind)
	}
	rep := &Report{Rows: t.Nrow(), Columns: t.Ncol()}
	rep.Balance = classBalance(target, opt.ImbalanceThreshold)
	if len(rep.Balance.Classes) == 0 {
		return nil, fmt.Errorf("target column %q has no non-missing values", opt.TargetColumn)
	}

	rep.PositiveLabel = opt.PositiveLabel
	if rep.PositiveLabel == "" {
		rep.PositiveLabel = guessPositiveLabel(rep.Balance.Classes)
		rep.Heuristic = true
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("positive label %q was inferred; pass an explicit label for trustworthy rates", rep.PositiveLabel))
	} else if !hasClass(rep.Balance.Classes, rep.PositiveLabel) {
		return nil, fmt.Errorf("positive label %q not present in target column %q", rep.PositiveLabel, opt.TargetColumn)
	}

	for _, name := range t.NumericNames() {
		if isIdentifier(name) {
			continue
		}
		c, _ := t.Col(name)
		if c.MissingCount() == c.Len() {
			// no sample to describe
			continue
		}
		rep.Distributions = append(rep.Distributions, describeShape(c, t.Nrow()))
	}

	for _, name := range t.CategoricalNames() {
		if name == opt.TargetColumn {
			continue
		}
		c, _ := t.Col(name)
		fb := crosstab(c, target, rep.PositiveLabel, opt.BiasThreshold)
		if len(fb.Rates) == 0 {
			continue
		}
		rep.Features = append(rep.Features, fb)
	}
	return rep, nil
}

func classBalance(target *table.Column, threshold float64) ClassBalance {
	counts := make(map[string]int)
	total := 0
	for i, v := range target.Strings {
		if target.Missing[i] {
			continue
		}
		counts[v]++
		total++
	}
	cb := ClassBalance{Target: target.Name}
	for label, n := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(n) * 100 / float64(total)
		}
		cb.Classes = append(cb.Classes, ClassCount{Label: label, Count: n, Pct: pct})
	}
	sort.Slice(cb.Classes, func(i, j int) bool {
		if cb.Classes[i].Count == cb.Classes[j].Count {
			return cb.Classes[i].Label < cb.Classes[j].Label
		}
		return cb.Classes[i].Count > cb.Classes[j].Count
	})
	if len(cb.Classes) > 0 {
		maxN := cb.Classes[0].Count
		minN := cb.Classes[len(cb.Classes)-1].Count
		if minN > 0 {
			cb.ImbalanceRatio = float64(maxN) / float64(minN)
			cb.Imbalanced = cb.ImbalanceRatio > threshold
		}
	}
	return cb
}

// guessPositiveLabel picks a label containing "approve", else the
// alphabetically first class.
func guessPositiveLabel(classes []ClassCount) string {
	for _, c := range classes {
		if strings.Contains(strings.ToLower(c.Label), "approve") {
			return c.Label
		}
	}
	labels := make([]string, len(classes))
	for i, c := range classes {
		labels[i] = c.Label
	}
	sort.Strings(labels)
	return labels[0]
}

func hasClass(classes []ClassCount, label string) bool {
	for _, c := range classes {
		if c.Label == label {
			return true
		}
	}
	return false
}

// crosstab computes the row-normalized cross-tabulation of feature against
// target, keeping only rows where both are present.
func crosstab(feature, target *table.Column, positive string, threshold float64) FeatureBias {
	type cell struct{ total, positive int }
	cells := make(map[string]*cell)
	var order []string
	for i, v := range feature.Strings {
		if feature.Missing[i] || target.Missing[i] {
			continue
		}
		c := cells[v]
		if c == nil {
			c = &cell{}
			cells[v] = c
			order = append(order, v)
		}
		c.total++
		if target.Strings[i] == positive {
			c.positive++
		}
	}
	sort.Strings(order)

	fb := FeatureBias{Feature: feature.Name, Unique: len(order)}
	minRate, maxRate := math.Inf(1), math.Inf(-1)
	for _, v := range order {
		c := cells[v]
		rate := float64(c.positive) * 100 / float64(c.total)
		fb.Rates = append(fb.Rates, CategoryRate{Category: v, Count: c.total, PositiveRate: rate})
		minRate = math.Min(minRate, rate)
		maxRate = math.Max(maxRate, rate)
	}
	if len(fb.Rates) > 0 {
		fb.Diff = maxRate - minRate
		fb.Detected = fb.Diff > threshold
	}
	return fb
}

func describeShape(c *table.Column, rows int) Distribution {
	d := Distribution{Column: c.Name}
	vals := c.NonMissing()
	d.Summary = stats.Describe(vals)
	if rows > 0 {
		d.MissingPct = float64(c.MissingCount()) * 100 / float64(rows)
	}
	sk := d.Summary.Skewness
	switch {
	case math.Abs(sk) < 0.5:
		d.Shape = "symmetric"
	case sk > 0:
		d.Shape = "right-skewed"
	default:
		d.Shape = "left-skewed"
	}
	switch {
	case math.Abs(sk) < 0.5 && math.Abs(d.Summary.Kurtosis) < 3:
		d.Likely = "approximately normal"
	case sk > 1:
		d.Likely = "right-skewed (log-normal or exponential)"
	case sk < -1:
		d.Likely = "left-skewed"
	default:
		d.Likely = "moderately skewed"
	}
	return d
}

// isIdentifier filters out id-style numeric columns whose distribution is
// meaningless.
func isIdentifier(name string) bool {
	lower := strings.ToLower(name)
	return lower == "id" || strings.HasSuffix(lower, "_id") || strings.HasPrefix(lower, "id_")
}
