package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Kheene145/ML-coursework/internal/clean"
)

// Global configuration structure.
type Global struct {
	OutlierMethod      string   `mapstructure:"outlier_method" yaml:"outlier_method"`
	ScalingMethod      string   `mapstructure:"scaling_method" yaml:"scaling_method"`
	BinaryThreshold    int      `mapstructure:"binary_threshold" yaml:"binary_threshold"`
	LabelThreshold     int      `mapstructure:"label_threshold" yaml:"label_threshold"`
	BiasThreshold      float64  `mapstructure:"bias_threshold" yaml:"bias_threshold"`
	ImbalanceThreshold float64  `mapstructure:"imbalance_threshold" yaml:"imbalance_threshold"`
	TargetColumn       string   `mapstructure:"target_column" yaml:"target_column"`
	PositiveLabel      string   `mapstructure:"positive_label" yaml:"positive_label"`
	MissingMarkers     []string `mapstructure:"missing_markers" yaml:"missing_markers"`
	TopN               int      `mapstructure:"top_n" yaml:"top_n"`
}

// CleanConfig projects the global configuration onto the cleaning pipeline.
func (c *Global) CleanConfig() clean.Config {
	return clean.Config{
		OutlierMethod: clean.OutlierMethod(c.OutlierMethod),
		ScaleMethod:   clean.ScaleMethod(c.ScalingMethod),
		Thresholds:    clean.Thresholds{Binary: c.BinaryThreshold, Label: c.LabelThreshold},
	}
}

// Validate rejects malformed method names and thresholds up front.
func (c *Global) Validate() error {
	if err := c.CleanConfig().Validate(); err != nil {
		return err
	}
	if c.BiasThreshold < 0 {
		return fmt.Errorf("bias_threshold must be >= 0, got %g", c.BiasThreshold)
	}
	if c.ImbalanceThreshold < 1 {
		return fmt.Errorf("imbalance_threshold must be >= 1, got %g", c.ImbalanceThreshold)
	}
	return nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.datalens/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datalens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATALENS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("outlier_method", string(clean.Cap))
	v.SetDefault("scaling_method", string(clean.Standardize))
	v.SetDefault("binary_threshold", clean.DefaultThresholds().Binary)
	v.SetDefault("label_threshold", clean.DefaultThresholds().Label)
	v.SetDefault("bias_threshold", 15.0)
	v.SetDefault("imbalance_threshold", 1.5)
	v.SetDefault("target_column", "")
	v.SetDefault("positive_label", "")
	v.SetDefault("missing_markers", []string{"", "NA", "N/A", "NaN", "null"})
	v.SetDefault("top_n", 5)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datalens")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
