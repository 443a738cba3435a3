package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kheene145/ML-coursework/internal/clean"
	"github.com/Kheene145/ML-coursework/internal/table"
)

var (
	cleanOutputPath      string
	cleanDelimiter       string
	cleanSheetName       string
	cleanSheetIndex      int
	cleanOutlierMethod   string
	cleanScalingMethod   string
	cleanBinaryThreshold int
	cleanLabelThreshold  int
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Run the cleaning pipeline: impute, dedupe, outliers, encode, scale",
	Long: `clean runs the full preparation pipeline over a dataset and writes the
cleaned table as CSV, along with YAML sidecar files recording the encoding
map and scaling parameters so every transformation can be inverted later.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		tbl, err := loadTable(path, cleanDelimiter, cleanSheetName, cleanSheetIndex)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Dataset loaded: %d rows, %d columns\n", tbl.Nrow(), tbl.Ncol())

		cfg := cleanRunConfig(cmd)
		res, err := clean.Run(tbl, cfg)
		if err != nil {
			return fmt.Errorf("clean %s: %w", filepath.Base(path), err)
		}

		fmt.Printf("✓ Missing values imputed: %d columns\n", len(res.Fills))
		fmt.Printf("✓ Duplicates removed: %d rows\n", res.DuplicatesRemoved)
		for _, f := range res.Fences {
			if f.Outliers > 0 {
				fmt.Printf("  %s: %d outliers outside [%.4g, %.4g]\n", f.Column, f.Outliers, f.Lower, f.Upper)
			}
		}
		fmt.Printf("✓ Outliers handled (%s): %d numeric columns checked\n", cfg.OutlierMethod, len(res.Fences))
		fmt.Printf("✓ Categorical columns encoded: %d\n", len(res.Encodings))
		fmt.Printf("✓ Features scaled (%s): %d columns\n", cfg.ScaleMethod, len(res.Scaling))
		for _, w := range res.Warnings {
			fmt.Printf("⚠ %s\n", w)
		}

		out := cleanOutputPath
		if out == "" {
			ext := filepath.Ext(path)
			out = strings.TrimSuffix(path, ext) + "_cleaned.csv"
		}
		if err := table.WriteCSV(res.Table, out); err != nil {
			return fmt.Errorf("write cleaned dataset: %w", err)
		}
		if err := res.SaveMetadata(out); err != nil {
			return err
		}
		encPath, scalePath := clean.MetadataPaths(out)
		fmt.Printf("✓ Cleaned dataset written to %s (%d rows, %d columns)\n", out, res.Table.Nrow(), res.Table.Ncol())
		if len(res.Encodings) > 0 {
			fmt.Printf("✓ Encoding map written to %s\n", encPath)
		}
		if len(res.Scaling) > 0 {
			fmt.Printf("✓ Scaling parameters written to %s\n", scalePath)
		}
		return nil
	},
}

// cleanRunConfig builds the pipeline configuration from the loaded config,
// letting explicitly-set flags win.
func cleanRunConfig(cmd *cobra.Command) clean.Config {
	cfg := effectiveConfig().CleanConfig()
	if cmd.Flags().Changed("outlier-method") {
		cfg.OutlierMethod = clean.OutlierMethod(cleanOutlierMethod)
	}
	if cmd.Flags().Changed("scaling-method") {
		cfg.ScaleMethod = clean.ScaleMethod(cleanScalingMethod)
	}
	if cmd.Flags().Changed("binary-threshold") {
		cfg.Thresholds.Binary = cleanBinaryThreshold
	}
	if cmd.Flags().Changed("label-threshold") {
		cfg.Thresholds.Label = cleanLabelThreshold
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutputPath, "output", "o", "", "cleaned CSV path (default <input>_cleaned.csv)")
	cleanCmd.Flags().StringVar(&cleanDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	cleanCmd.Flags().StringVar(&cleanSheetName, "sheet-name", "", "XLSX: sheet name to load")
	cleanCmd.Flags().IntVar(&cleanSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	cleanCmd.Flags().StringVar(&cleanOutlierMethod, "outlier-method", string(clean.Cap), "outlier handling: cap | remove")
	cleanCmd.Flags().StringVar(&cleanScalingMethod, "scaling-method", string(clean.Standardize), "feature scaling: standardize | normalize")
	cleanCmd.Flags().IntVar(&cleanBinaryThreshold, "binary-threshold", 2, "unique-value count treated as binary")
	cleanCmd.Flags().IntVar(&cleanLabelThreshold, "label-threshold", 10, "max unique values for label encoding; above this, one-hot")
}
