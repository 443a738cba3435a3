package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kheene145/ML-coursework/internal/bias"
	"github.com/Kheene145/ML-coursework/internal/report"
)

var (
	analyzeOutputPath    string
	analyzeDelimiter     string
	analyzeSheetName     string
	analyzeSheetIndex    int
	analyzeTarget        string
	analyzePositiveLabel string
	analyzeBiasThreshold float64
	analyzeImbalance     float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze numeric distributions and group bias against a binary target",
	Long: `analyze inspects the shape of every numeric column and cross-tabulates
each categorical feature against a binary target column, flagging features
whose positive-outcome rate varies across groups by more than the
configured threshold.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		tbl, err := loadTable(path, analyzeDelimiter, analyzeSheetName, analyzeSheetIndex)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Dataset loaded: %d rows, %d columns\n", tbl.Nrow(), tbl.Ncol())

		opt := analyzeOptions(cmd)
		res, err := bias.Analyze(tbl, opt)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", filepath.Base(path), err)
		}
		res.Source = filepath.Base(path)
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "⚠ %s\n", w)
		}

		md := report.Markdown(res)
		if analyzeOutputPath != "" {
			if err := os.WriteFile(analyzeOutputPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("✓ Report written to %s\n", analyzeOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func analyzeOptions(cmd *cobra.Command) bias.Options {
	c := effectiveConfig()
	opt := bias.DefaultOptions()
	opt.TargetColumn = c.TargetColumn
	opt.PositiveLabel = c.PositiveLabel
	opt.BiasThreshold = c.BiasThreshold
	opt.ImbalanceThreshold = c.ImbalanceThreshold
	if cmd.Flags().Changed("target") {
		opt.TargetColumn = analyzeTarget
	}
	if cmd.Flags().Changed("positive-label") {
		opt.PositiveLabel = analyzePositiveLabel
	}
	if cmd.Flags().Changed("bias-threshold") {
		opt.BiasThreshold = analyzeBiasThreshold
	}
	if cmd.Flags().Changed("imbalance-threshold") {
		opt.ImbalanceThreshold = analyzeImbalance
	}
	return opt
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeOutputPath, "output", "o", "", "optional path to write the report (Markdown)")
	analyzeCmd.Flags().StringVar(&analyzeDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&analyzeSheetName, "sheet-name", "", "XLSX: sheet name to load")
	analyzeCmd.Flags().IntVar(&analyzeSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().StringVarP(&analyzeTarget, "target", "t", "", "binary target column (required unless configured)")
	analyzeCmd.Flags().StringVar(&analyzePositiveLabel, "positive-label", "", "target value counted as the positive outcome")
	analyzeCmd.Flags().Float64Var(&analyzeBiasThreshold, "bias-threshold", 15, "rate spread in percentage points that flags a feature")
	analyzeCmd.Flags().Float64Var(&analyzeImbalance, "imbalance-threshold", 1.5, "max/min class ratio that flags the target as imbalanced")
}
