package clean

import "errors"

// Degenerate-column conditions. These are explicit failures: the pipeline
// never fabricates a statistic from an empty sample or divides by a zero
// spread.
var (
	ErrAllMissing   = errors.New("column has no non-missing values")
	ErrZeroVariance = errors.New("column has zero standard deviation")
	ErrZeroRange    = errors.New("column min equals max")
)

// ColumnError ties a stage failure to the column that caused it.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string { return e.Column + ": " + e.Err.Error() }

func (e *ColumnError) Unwrap() error { return e.Err }
