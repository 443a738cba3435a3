package clean

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/Kheene145/ML-coursework/internal/stats"
	"github.com/Kheene145/ML-coursework/internal/table"
)

// ScaleMethod selects the rescaling formula.
type ScaleMethod string

const (
	// Standardize rescales to zero mean and unit standard deviation.
	Standardize ScaleMethod = "standardize"
	// Normalize rescales to [0, 1] based on the observed min/max.
	Normalize ScaleMethod = "normalize"
)

// MeanStd are the standardization parameters of one column.
type MeanStd struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

// MinMax are the min-max normalization parameters of one column.
type MinMax struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ColumnScale is a tagged variant over the two parameter sets. Exactly one
// of Standardize/Normalize is non-nil, matching Method. The parameters are
// sufficient to reconstruct the inverse transform.
type ColumnScale struct {
	Method      ScaleMethod `yaml:"method"`
	Standardize *MeanStd    `yaml:"standardize,omitempty"`
	Normalize   *MinMax     `yaml:"normalize,omitempty"`
}

// Apply scales a raw value with the recorded parameters.
func (cs ColumnScale) Apply(v float64) float64 {
	switch cs.Method {
	case Standardize:
		return (v - cs.Standardize.Mean) / cs.Standardize.Std
	case Normalize:
		return (v - cs.Normalize.Min) / (cs.Normalize.Max - cs.Normalize.Min)
	}
	return v
}

// Invert maps a scaled value back to the original scale.
func (cs ColumnScale) Invert(v float64) float64 {
	switch cs.Method {
	case Standardize:
		return v*cs.Standardize.Std + cs.Standardize.Mean
	case Normalize:
		return v*(cs.Normalize.Max-cs.Normalize.Min) + cs.Normalize.Min
	}
	return v
}

// ScalingParams maps column name to the parameters used to scale it.
type ScalingParams map[string]ColumnScale

// Scale rescales every numeric column with the selected method and returns
// the transformed table, the per-column parameters, and the columns skipped
// for degenerate spread (zero std, or min equal to max). A skipped column is
// left unscaled and does not block its siblings. The input is not mutated.
func Scale(t *table.Table, method ScaleMethod) (*table.Table, ScalingParams, []*ColumnError, error) {
	switch method {
	case Standardize, Normalize:
	default:
		return nil, nil, nil, fmt.Errorf("unknown scaling method %q (use %q or %q)", method, Standardize, Normalize)
	}

	out := t.Clone()
	params := make(ScalingParams)
	var skipped []*ColumnError

	for _, name := range out.NumericNames() {
		c, _ := out.Col(name)
		vals := c.NonMissing()
		if len(vals) == 0 {
			skipped = append(skipped, &ColumnError{Column: name, Err: ErrAllMissing})
			continue
		}
		var cs ColumnScale
		switch method {
		case Standardize:
			m, s := stats.Mean(vals), stats.Std(vals)
			if s == 0 {
				skipped = append(skipped, &ColumnError{Column: name, Err: ErrZeroVariance})
				continue
			}
			cs = ColumnScale{Method: Standardize, Standardize: &MeanStd{Mean: m, Std: s}}
		case Normalize:
			lo, hi := floats.Min(vals), floats.Max(vals)
			if lo == hi {
				skipped = append(skipped, &ColumnError{Column: name, Err: ErrZeroRange})
				continue
			}
			cs = ColumnScale{Method: Normalize, Normalize: &MinMax{Min: lo, Max: hi}}
		}
		for i := range c.Floats {
			if !c.Missing[i] {
				c.Floats[i] = cs.Apply(c.Floats[i])
			}
		}
		params[name] = cs
	}
	return out, params, skipped, nil
}
