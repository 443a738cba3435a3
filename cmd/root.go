package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/Kheene145/ML-coursework/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "datalens",
	Short: "datalens: assess, clean, and analyze tabular datasets",
	Long: `datalens loads a delimited dataset and walks it through the classic
preparation steps: quality assessment, missing-value imputation, duplicate
removal, IQR outlier handling, categorical encoding, feature scaling, and
distribution/bias analysis against a binary target.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.datalens/config.yaml)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration, or defaults when config
// loading failed earlier.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load("")
	if err != nil {
		return &cfgpkg.Global{
			OutlierMethod:      "cap",
			ScalingMethod:      "standardize",
			BinaryThreshold:    2,
			LabelThreshold:     10,
			BiasThreshold:      15,
			ImbalanceThreshold: 1.5,
			TopN:               5,
		}
	}
	return c
}
