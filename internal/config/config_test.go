package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Kheene145/ML-coursework/internal/clean"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.OutlierMethod != "cap" || c.ScalingMethod != "standardize" {
		t.Fatalf("method defaults %q/%q", c.OutlierMethod, c.ScalingMethod)
	}
	if c.BinaryThreshold != 2 || c.LabelThreshold != 10 {
		t.Fatalf("threshold defaults %d/%d", c.BinaryThreshold, c.LabelThreshold)
	}
	if c.BiasThreshold != 15 || c.ImbalanceThreshold != 1.5 {
		t.Fatalf("analysis defaults %g/%g", c.BiasThreshold, c.ImbalanceThreshold)
	}
	if c.TopN != 5 || len(c.MissingMarkers) == 0 {
		t.Fatalf("misc defaults top_n=%d markers=%v", c.TopN, c.MissingMarkers)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "outlier_method: remove\nscaling_method: normalize\nlabel_threshold: 6\ntarget_column: status\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.OutlierMethod != "remove" || c.ScalingMethod != "normalize" {
		t.Fatalf("methods %q/%q", c.OutlierMethod, c.ScalingMethod)
	}
	if c.LabelThreshold != 6 || c.TargetColumn != "status" {
		t.Fatalf("label=%d target=%q", c.LabelThreshold, c.TargetColumn)
	}
	// untouched keys keep defaults
	if c.BinaryThreshold != 2 {
		t.Fatalf("binary threshold %d", c.BinaryThreshold)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.TargetColumn = "approved"
	c.PositiveLabel = "yes"
	c.BiasThreshold = 10
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.TargetColumn != "approved" || back.PositiveLabel != "yes" || back.BiasThreshold != 10 {
		t.Fatalf("round trip %+v", back)
	}
}

func TestCleanConfigProjection(t *testing.T) {
	c := &Global{OutlierMethod: "remove", ScalingMethod: "normalize", BinaryThreshold: 2, LabelThreshold: 8}
	cc := c.CleanConfig()
	if cc.OutlierMethod != clean.Remove || cc.ScaleMethod != clean.Normalize {
		t.Fatalf("projection %+v", cc)
	}
	if cc.Thresholds.Binary != 2 || cc.Thresholds.Label != 8 {
		t.Fatalf("thresholds %+v", cc.Thresholds)
	}
}

func TestValidate(t *testing.T) {
	good := &Global{OutlierMethod: "cap", ScalingMethod: "standardize", BinaryThreshold: 2, LabelThreshold: 10, BiasThreshold: 15, ImbalanceThreshold: 1.5}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := *good
	bad.OutlierMethod = "winsorize"
	if err := bad.Validate(); err == nil {
		t.Fatal("unknown outlier method accepted")
	}
	bad = *good
	bad.ImbalanceThreshold = 0.5
	if err := bad.Validate(); err == nil {
		t.Fatal("imbalance threshold below 1 accepted")
	}
	bad = *good
	bad.BiasThreshold = -1
	if err := bad.Validate(); err == nil {
		t.Fatal("negative bias threshold accepted")
	}
}
