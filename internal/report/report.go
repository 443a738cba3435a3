// Package report renders analysis results as Markdown.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kheene145/ML-coursework/internal/bias"
)

// Markdown renders the distribution and bias report.
func Markdown(r *bias.Report) string {
	var b strings.Builder
	b.WriteString("# Distribution and Bias Analysis Report\n\n")
	b.WriteString("## Dataset Overview\n")
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("- **Source:** %s\n", r.Source))
	}
	b.WriteString(fmt.Sprintf("- **Total Rows:** %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("- **Total Columns:** %d\n", r.Columns))
	b.WriteString(fmt.Sprintf("- **Analysis Date:** %s\n", time.Now().Format("2006-01-02 15:04:05")))

	b.WriteString("\n---\n\n## Class Balance\n\n")
	b.WriteString(fmt.Sprintf("### Target Variable: %s\n\n", r.Balance.Target))
	for _, c := range r.Balance.Classes {
		b.WriteString(fmt.Sprintf("- **%s:** %d (%.2f%%)\n", c.Label, c.Count, c.Pct))
	}
	b.WriteString(fmt.Sprintf("\n**Imbalance Ratio:** %.2f:1\n", r.Balance.ImbalanceRatio))
	if r.Balance.Imbalanced {
		b.WriteString("\n⚠ **Warning:** Dataset shows class imbalance. Consider:\n")
		b.WriteString("- Oversampling the minority class\n")
		b.WriteString("- Undersampling the majority class\n")
		b.WriteString("- Class weights in models\n")
	} else {
		b.WriteString("\n✓ Dataset is reasonably balanced.\n")
	}
	label := r.PositiveLabel
	if r.Heuristic {
		label += " (inferred)"
	}
	b.WriteString(fmt.Sprintf("\n**Positive Outcome:** %s\n", label))

	if len(r.Distributions) > 0 {
		b.WriteString("\n---\n\n## Numerical Feature Distributions\n")
		for _, d := range r.Distributions {
			s := d.Summary
			b.WriteString(fmt.Sprintf("\n### %s\n\n", d.Column))
			b.WriteString(fmt.Sprintf("- **Likely Distribution:** %s\n", d.Likely))
			b.WriteString(fmt.Sprintf("- **Mean:** %.2f\n", s.Mean))
			b.WriteString(fmt.Sprintf("- **Median:** %.2f\n", s.Median))
			b.WriteString(fmt.Sprintf("- **Std Dev:** %.2f\n", s.Std))
			b.WriteString(fmt.Sprintf("- **Min / Max:** %.2f / %.2f\n", s.Min, s.Max))
			b.WriteString(fmt.Sprintf("- **Skewness:** %.3f (%s)\n", s.Skewness, d.Shape))
			b.WriteString(fmt.Sprintf("- **Kurtosis:** %.3f\n", s.Kurtosis))
			if d.MissingPct > 0 {
				b.WriteString(fmt.Sprintf("- **Missing:** %.1f%%\n", d.MissingPct))
			}
		}
	}

	if len(r.Features) > 0 {
		b.WriteString("\n---\n\n## Bias Analysis\n")
		for _, f := range r.Features {
			b.WriteString(fmt.Sprintf("\n### %s\n\n", f.Feature))
			if f.Detected {
				b.WriteString(fmt.Sprintf("⚠ **Bias Detected:** %.1f%% difference in positive-outcome rates\n\n", f.Diff))
			} else {
				b.WriteString("✓ **No Significant Bias Detected**\n\n")
			}
			b.WriteString("**Rates by Category:**\n")
			for _, cr := range f.Rates {
				b.WriteString(fmt.Sprintf("- %s: %.1f%% (n=%d)\n", cr.Category, cr.PositiveRate, cr.Count))
			}
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n---\n\n## Notes\n\n")
		for _, w := range r.Warnings {
			b.WriteString("- " + w + "\n")
		}
	}
	return b.String()
}
