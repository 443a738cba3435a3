// Package clean implements the deterministic tabular-cleaning pipeline:
// imputation, duplicate removal, IQR outlier handling, categorical encoding,
// and feature scaling. Every stage consumes an immutable view of its input
// and returns a new table plus derived metadata, so repeated runs over the
// same input and configuration produce the same output.
package clean

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Kheene145/ML-coursework/internal/table"
)

// Config selects the methods and thresholds of a cleaning run.
type Config struct {
	OutlierMethod OutlierMethod
	ScaleMethod   ScaleMethod
	Thresholds    Thresholds
}

// DefaultConfig returns the default run: cap outliers, standardize, 2/10
// encoding cutoffs.
func DefaultConfig() Config {
	return Config{
		OutlierMethod: Cap,
		ScaleMethod:   Standardize,
		Thresholds:    DefaultThresholds(),
	}
}

// Validate rejects malformed configuration before any transformation runs.
func (c Config) Validate() error {
	switch c.OutlierMethod {
	case Cap, Remove:
	default:
		return fmt.Errorf("unknown outlier method %q (use %q or %q)", c.OutlierMethod, Cap, Remove)
	}
	switch c.ScaleMethod {
	case Standardize, Normalize:
	default:
		return fmt.Errorf("unknown scaling method %q (use %q or %q)", c.ScaleMethod, Standardize, Normalize)
	}
	if c.Thresholds.Binary <= 0 || c.Thresholds.Label < c.Thresholds.Binary {
		return fmt.Errorf("invalid encoding thresholds binary=%d label=%d", c.Thresholds.Binary, c.Thresholds.Label)
	}
	return nil
}

// Result carries the cleaned table and everything recorded along the way,
// each artifact owned by the stage that produced it and handed on by value.
type Result struct {
	RunID             string
	Table             *table.Table
	Fills             []FillValue
	DuplicatesRemoved int
	Fences            []Fence
	Encodings         EncodingMap
	Scaling           ScalingParams
	Warnings          []string
}

// Run executes the full pipeline in order: impute, dedupe, handle outliers,
// encode, scale. Degenerate columns (all missing, zero spread) are skipped
// by their stage and collected as warnings; they never block the run or
// their siblings.
func Run(t *table.Table, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := &Result{RunID: uuid.NewString()}

	cur, fills, dead := Impute(t)
	res.Fills = fills
	for _, ce := range dead {
		res.Warnings = append(res.Warnings, "impute skipped "+ce.Error())
	}

	cur, removed, err := Dedupe(cur)
	if err != nil {
		return nil, fmt.Errorf("dedupe: %w", err)
	}
	res.DuplicatesRemoved = removed

	cur, fences, err := HandleOutliers(cur, cfg.OutlierMethod)
	if err != nil {
		return nil, fmt.Errorf("outliers: %w", err)
	}
	res.Fences = fences

	cur, enc, err := Encode(cur, cfg.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	res.Encodings = enc

	cur, params, skipped, err := Scale(cur, cfg.ScaleMethod)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	res.Scaling = params
	for _, ce := range skipped {
		res.Warnings = append(res.Warnings, "scale skipped "+ce.Error())
	}

	res.Table = cur
	return res, nil
}
