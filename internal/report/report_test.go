package report

import (
	"strings"
	"testing"

	"github.com/Kheene145/ML-coursework/internal/bias"
	"github.com/Kheene145/ML-coursework/internal/stats"
)

func sampleReport() *bias.Report {
	return &bias.Report{
		Source:  "loans.csv",
		Rows:    100,
		Columns: 5,
		Balance: bias.ClassBalance{
			Target: "status",
			Classes: []bias.ClassCount{
				{Label: "approved", Count: 70, Pct: 70},
				{Label: "rejected", Count: 30, Pct: 30},
			},
			ImbalanceRatio: 2.33,
			Imbalanced:     true,
		},
		PositiveLabel: "approved",
		Heuristic:     true,
		Distributions: []bias.Distribution{
			{
				Column:  "income",
				Summary: stats.Summary{Count: 100, Mean: 52.5, Median: 50, Std: 12, Min: 10, Max: 120, Skewness: 1.4, Kurtosis: 2.1},
				Shape:   "right-skewed",
				Likely:  "right-skewed (log-normal or exponential)",
			},
		},
		Features: []bias.FeatureBias{
			{
				Feature: "gender",
				Unique:  2,
				Rates: []bias.CategoryRate{
					{Category: "f", Count: 50, PositiveRate: 60},
					{Category: "m", Count: 50, PositiveRate: 80},
				},
				Diff:     20,
				Detected: true,
			},
		},
		Warnings: []string{"positive label \"approved\" was inferred; pass an explicit label for trustworthy rates"},
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleReport())
	for _, want := range []string{
		"# Distribution and Bias Analysis Report",
		"## Dataset Overview",
		"- **Source:** loans.csv",
		"- **Total Rows:** 100",
		"## Class Balance",
		"### Target Variable: status",
		"- **approved:** 70 (70.00%)",
		"**Imbalance Ratio:** 2.33:1",
		"Oversampling the minority class",
		"**Positive Outcome:** approved (inferred)",
		"## Numerical Feature Distributions",
		"### income",
		"- **Likely Distribution:** right-skewed (log-normal or exponential)",
		"- **Skewness:** 1.400 (right-skewed)",
		"## Bias Analysis",
		"### gender",
		"⚠ **Bias Detected:** 20.0% difference",
		"- m: 80.0% (n=50)",
		"## Notes",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownBalancedNoBias(t *testing.T) {
	r := sampleReport()
	r.Balance.Imbalanced = false
	r.Heuristic = false
	r.Features[0].Detected = false
	r.Warnings = nil
	md := Markdown(r)
	if !strings.Contains(md, "✓ Dataset is reasonably balanced.") {
		t.Fatalf("missing balanced note:\n%s", md)
	}
	if !strings.Contains(md, "✓ **No Significant Bias Detected**") {
		t.Fatalf("missing no-bias note:\n%s", md)
	}
	if strings.Contains(md, "(inferred)") || strings.Contains(md, "## Notes") {
		t.Fatalf("stale sections present:\n%s", md)
	}
}
