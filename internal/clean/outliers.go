package clean

import (
	"fmt"

	"github.com/Kheene145/ML-coursework/internal/stats"
	"github.com/Kheene145/ML-coursework/internal/table"
)

// OutlierMethod selects how detected outliers are handled.
type OutlierMethod string

const (
	// Cap clamps outliers to the nearer fence (Winsorization). Default.
	Cap OutlierMethod = "cap"
	// Remove drops any row with an outlier in any numeric column.
	Remove OutlierMethod = "remove"
)

// FenceMultiplier is the IQR multiple used for the outlier bounds.
const FenceMultiplier = 1.5

// Fence is the per-column IQR bounds plus the outlier count observed under
// them. Fences are recomputed fresh on every run, never persisted.
type Fence struct {
	Column   string
	Q1       float64
	Q3       float64
	Lower    float64
	Upper    float64
	Outliers int
}

// Contains reports whether v lies inside the fence (inclusive).
func (f Fence) Contains(v float64) bool {
	return v >= f.Lower && v <= f.Upper
}

// HandleOutliers fences each numeric column at Q1-1.5*IQR and Q3+1.5*IQR,
// with quartiles interpolated linearly between closest ranks, and applies
// the selected method. When IQR is zero the bounds collapse to Q1 and every
// value unequal to it counts as an outlier. With Remove, fences come from
// the input table, not recomputed after rows drop. The input is not mutated.
func HandleOutliers(t *table.Table, method OutlierMethod) (*table.Table, []Fence, error) {
	switch method {
	case Cap, Remove:
	default:
		return nil, nil, fmt.Errorf("unknown outlier method %q (use %q or %q)", method, Cap, Remove)
	}

	var fences []Fence
	for _, name := range t.NumericNames() {
		c, _ := t.Col(name)
		vals := c.NonMissing()
		if len(vals) == 0 {
			continue
		}
		f := Fence{Column: name}
		f.Q1 = stats.Quantile(vals, 0.25)
		f.Q3 = stats.Quantile(vals, 0.75)
		iqr := f.Q3 - f.Q1
		f.Lower = f.Q1 - FenceMultiplier*iqr
		f.Upper = f.Q3 + FenceMultiplier*iqr
		for i, v := range c.Floats {
			if !c.Missing[i] && !f.Contains(v) {
				f.Outliers++
			}
		}
		fences = append(fences, f)
	}

	if method == Remove {
		drop := make([]bool, t.Nrow())
		for _, f := range fences {
			c, _ := t.Col(f.Column)
			for i, v := range c.Floats {
				if !c.Missing[i] && !f.Contains(v) {
					drop[i] = true
				}
			}
		}
		keep := make([]bool, len(drop))
		for i, d := range drop {
			keep[i] = !d
		}
		out, err := t.Filter(keep)
		if err != nil {
			return nil, nil, err
		}
		return out, fences, nil
	}

	out := t.Clone()
	for _, f := range fences {
		c, _ := out.Col(f.Column)
		for i, v := range c.Floats {
			if c.Missing[i] {
				continue
			}
			if v < f.Lower {
				c.Floats[i] = f.Lower
			} else if v > f.Upper {
				c.Floats[i] = f.Upper
			}
		}
	}
	return out, fences, nil
}
