package clean

import (
	"testing"

	"github.com/Kheene145/ML-coursework/internal/table"
)

func TestDedupeKeepsFirst(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "x", Kind: table.Numeric, Floats: []float64{1, 2, 1, 3, 2}},
		table.Column{Name: "g", Kind: table.Categorical, Strings: []string{"a", "b", "a", "c", "b"}},
	)
	out, removed, err := Dedupe(tbl)
	if err != nil {
		t.Fatalf("Dedupe: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	if out.Nrow() != 3 {
		t.Fatalf("rows %d, want 3", out.Nrow())
	}
	x, _ := out.Col("x")
	if x.Floats[0] != 1 || x.Floats[1] != 2 || x.Floats[2] != 3 {
		t.Fatalf("row order not preserved: %v", x.Floats)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "x", Kind: table.Numeric, Floats: []float64{1, 1, 2}},
	)
	once, removed, err := Dedupe(tbl)
	if err != nil || removed != 1 {
		t.Fatalf("first pass: removed=%d err=%v", removed, err)
	}
	twice, removed, err := Dedupe(once)
	if err != nil || removed != 0 {
		t.Fatalf("second pass: removed=%d err=%v", removed, err)
	}
	if twice.Nrow() != once.Nrow() {
		t.Fatalf("second pass changed rows: %d vs %d", twice.Nrow(), once.Nrow())
	}
}

func TestDedupeMissingNotEqualToValue(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "g", Kind: table.Categorical,
			Strings: []string{"", "", ""},
			Missing: []bool{true, false, true}},
	)
	_, removed, err := Dedupe(tbl)
	if err != nil {
		t.Fatalf("Dedupe: %v", err)
	}
	// rows 0 and 2 duplicate each other; row 1 (empty string, present) does not
	if removed != 1 {
		t.Fatalf("removed %d, want 1", removed)
	}
}
