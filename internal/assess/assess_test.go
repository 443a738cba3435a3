package assess

import (
	"strings"
	"testing"

	"github.com/Kheene145/ML-coursework/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.Column{Name: "income", Kind: table.Numeric,
			Floats:  []float64{10, 20, 30, 40, 0},
			Missing: []bool{false, false, false, false, true}},
		table.Column{Name: "grade", Kind: table.Categorical,
			Strings: []string{"a", "b", "a", "c", "a"}},
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func TestRunProfile(t *testing.T) {
	p := Run(sampleTable(t), DefaultOptions())
	if p.Rows != 5 || p.Cols != 2 {
		t.Fatalf("shape %dx%d", p.Rows, p.Cols)
	}
	if p.Duplicates != 0 {
		t.Fatalf("duplicates %d", p.Duplicates)
	}

	income := p.Columns[0]
	if income.Name != "income" || income.Kind != table.Numeric {
		t.Fatalf("column %+v", income)
	}
	if income.MissingCount != 1 || income.MissingPct != 20 {
		t.Fatalf("missing %d (%.1f%%)", income.MissingCount, income.MissingPct)
	}
	if income.Numeric == nil || income.Numeric.Count != 4 || income.Numeric.Mean != 25 {
		t.Fatalf("summary %+v", income.Numeric)
	}

	grade := p.Columns[1]
	if grade.Numeric != nil {
		t.Fatal("categorical column got numeric summary")
	}
	if grade.Unique != 3 {
		t.Fatalf("unique %d", grade.Unique)
	}
	// count desc, ties by value
	if grade.TopValues[0].Value != "a" || grade.TopValues[0].Count != 3 {
		t.Fatalf("top values %+v", grade.TopValues)
	}
	if grade.TopValues[1].Value != "b" || grade.TopValues[2].Value != "c" {
		t.Fatalf("tie order %+v", grade.TopValues)
	}
}

func TestRunTopNTruncation(t *testing.T) {
	p := Run(sampleTable(t), Options{TopN: 1})
	grade := p.Columns[1]
	if len(grade.TopValues) != 1 || grade.Unique != 3 {
		t.Fatalf("topN=1 gave %+v (unique %d)", grade.TopValues, grade.Unique)
	}
}

func TestRunCountsDuplicates(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "x", Kind: table.Numeric, Floats: []float64{1, 1, 2}},
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	p := Run(tbl, DefaultOptions())
	if p.Duplicates != 1 {
		t.Fatalf("duplicates %d", p.Duplicates)
	}
}

func TestRunEmptyTable(t *testing.T) {
	tbl, err := table.New()
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	p := Run(tbl, DefaultOptions())
	if len(p.Notes) != 1 || p.Notes[0] != "no columns" {
		t.Fatalf("notes %v", p.Notes)
	}
}

func TestMarkdown(t *testing.T) {
	p := Run(sampleTable(t), DefaultOptions())
	p.Source = "loans.csv"
	md := p.Markdown()
	if !strings.Contains(md, "[DATASET SUMMARY]") {
		t.Fatalf("markdown missing summary: %s", md)
	}
	if !strings.Contains(md, "File: loans.csv") {
		t.Fatalf("markdown missing file: %s", md)
	}
	if !strings.Contains(md, "Rows: 5") || !strings.Contains(md, "Duplicate rows: 0") {
		t.Fatalf("markdown missing counts: %s", md)
	}
	if !strings.Contains(md, "[SCHEMA]") || !strings.Contains(md, "- income: numeric (missing 1, 20.0%)") {
		t.Fatalf("markdown missing schema: %s", md)
	}
	if !strings.Contains(md, "a(3)") || !strings.Contains(md, "unique=3") {
		t.Fatalf("markdown missing frequency table: %s", md)
	}
}
