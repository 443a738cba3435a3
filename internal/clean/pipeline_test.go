package clean

import (
	"path/filepath"
	"testing"

	"github.com/Kheene145/ML-coursework/internal/table"
)

func loanTable(t *testing.T) *table.Table {
	t.Helper()
	return mustTable(t,
		table.Column{Name: "income", Kind: table.Numeric,
			Floats:  []float64{50, 60, 0, 55, 50, 5000},
			Missing: []bool{false, false, true, false, false, false}},
		table.Column{Name: "employment", Kind: table.Categorical,
			Strings: []string{"full", "part", "full", "", "full", "self"},
			Missing: []bool{false, false, false, true, false, false}},
		table.Column{Name: "approved", Kind: table.Categorical,
			Strings: []string{"yes", "no", "yes", "no", "yes", "no"}},
	)
}

func TestRunPipelineOrder(t *testing.T) {
	res, err := Run(loanTable(t), DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.RunID == "" {
		t.Fatal("run id not assigned")
	}
	if len(res.Fills) != 2 {
		t.Fatalf("fills %v", res.Fills)
	}
	for _, c := range res.Table.Columns() {
		if c.MissingCount() != 0 {
			t.Fatalf("column %s still has missing values", c.Name)
		}
		if c.Kind != table.Numeric {
			t.Fatalf("column %s left unencoded", c.Name)
		}
	}
	if len(res.Encodings) != 2 {
		t.Fatalf("encodings %v", res.Encodings)
	}
	if res.Encodings["approved"].Method != MethodBinary {
		t.Fatalf("approved method %q", res.Encodings["approved"].Method)
	}
	if res.Encodings["employment"].Method != MethodLabel {
		t.Fatalf("employment method %q", res.Encodings["employment"].Method)
	}
	if len(res.Scaling) == 0 {
		t.Fatal("no scaling params recorded")
	}
}

func TestRunRemoveThenDuplicates(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "x", Kind: table.Numeric, Floats: []float64{1, 1, 2, 3, 100, 2}},
	)
	cfg := DefaultConfig()
	cfg.OutlierMethod = Remove
	res, err := Run(tbl, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.DuplicatesRemoved != 2 {
		t.Fatalf("duplicates removed %d, want 2", res.DuplicatesRemoved)
	}
	// distinct rows 1,2,3,100; the 100 is fenced out
	if res.Table.Nrow() != 3 {
		t.Fatalf("rows %d, want 3", res.Table.Nrow())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tbl := mustTable(t, table.Column{Name: "x", Kind: table.Numeric, Floats: []float64{1, 2}})
	cfg := DefaultConfig()
	cfg.ScaleMethod = "robust"
	if _, err := Run(tbl, cfg); err == nil {
		t.Fatal("invalid config accepted")
	}
	cfg = DefaultConfig()
	cfg.Thresholds.Label = 1
	if _, err := Run(tbl, cfg); err == nil {
		t.Fatal("invalid thresholds accepted")
	}
}

func TestRunSurvivesAllMissingColumn(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "dead", Kind: table.Numeric,
			Floats: []float64{0, 0, 0}, Missing: []bool{true, true, true}},
		table.Column{Name: "income", Kind: table.Numeric,
			Floats:  []float64{10, 0, 30},
			Missing: []bool{false, true, false}},
	)
	res, err := Run(tbl, DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// dead column is skipped by impute and scale, not fatal
	if len(res.Warnings) != 2 {
		t.Fatalf("warnings %v", res.Warnings)
	}
	income, _ := res.Table.Col("income")
	if income.MissingCount() != 0 {
		t.Fatal("sibling column not imputed")
	}
	if _, ok := res.Scaling["income"]; !ok {
		t.Fatal("sibling column not scaled")
	}
	dead, _ := res.Table.Col("dead")
	if dead.MissingCount() != 3 {
		t.Fatal("dead column should pass through untouched")
	}
}

func TestRunWarnsOnDegenerateScale(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "flat", Kind: table.Numeric, Floats: []float64{7, 7, 7}},
		table.Column{Name: "ok", Kind: table.Numeric, Floats: []float64{1, 2, 3}},
	)
	res, err := Run(tbl, DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings %v", res.Warnings)
	}
	if _, ok := res.Scaling["ok"]; !ok {
		t.Fatal("sibling column not scaled")
	}
}

func TestMetadataPaths(t *testing.T) {
	enc, scale := MetadataPaths("/data/loans_cleaned.csv")
	if enc != "/data/loans_cleaned_encoding_map.yaml" {
		t.Fatalf("encoding path %q", enc)
	}
	if scale != "/data/loans_cleaned_scaling_params.yaml" {
		t.Fatalf("scaling path %q", scale)
	}
}

func TestSaveMetadataRoundTrip(t *testing.T) {
	res, err := Run(loanTable(t), DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := filepath.Join(t.TempDir(), "loans_cleaned.csv")
	if err := res.SaveMetadata(out); err != nil {
		t.Fatalf("SaveMetadata: %v", err)
	}
	encPath, scalePath := MetadataPaths(out)

	enc, err := LoadEncodingMap(encPath)
	if err != nil {
		t.Fatalf("LoadEncodingMap: %v", err)
	}
	if enc["approved"].Mapping["yes"] != res.Encodings["approved"].Mapping["yes"] {
		t.Fatalf("encoding map did not round trip: %v", enc)
	}

	params, err := LoadScalingParams(scalePath)
	if err != nil {
		t.Fatalf("LoadScalingParams: %v", err)
	}
	got, ok := params["income"]
	if !ok || got.Method != Standardize || got.Standardize == nil {
		t.Fatalf("scaling params did not round trip: %+v", got)
	}
	want := res.Scaling["income"].Standardize
	if got.Standardize.Mean != want.Mean || got.Standardize.Std != want.Std {
		t.Fatalf("mean/std drift: %+v vs %+v", got.Standardize, want)
	}
}
