package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kheene145/ML-coursework/internal/assess"
	"github.com/Kheene145/ML-coursework/internal/table"
)

var (
	assessOutputPath string
	assessDelimiter  string
	assessTopN       int
	assessSheetName  string
	assessSheetIndex int
)

var assessCmd = &cobra.Command{
	Use:   "assess <file>",
	Short: "Assess dataset quality: shape, dtypes, missingness, duplicates, statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		tbl, err := loadTable(path, assessDelimiter, assessSheetName, assessSheetIndex)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Dataset loaded: %d rows, %d columns\n\n", tbl.Nrow(), tbl.Ncol())

		opt := assess.DefaultOptions()
		if assessTopN > 0 {
			opt.TopN = assessTopN
		} else if c := effectiveConfig(); c.TopN > 0 {
			opt.TopN = c.TopN
		}
		profile := assess.Run(tbl, opt)
		profile.Source = filepath.Base(path)
		md := profile.Markdown()

		if assessOutputPath != "" {
			if err := os.WriteFile(assessOutputPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote assessment to %s\n", assessOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

// loadTable resolves delimiter/sheet flags shared by the commands.
func loadTable(path, delimiter, sheetName string, sheetIndex int) (*table.Table, error) {
	opt := table.DefaultLoadOptions()
	if markers := effectiveConfig().MissingMarkers; len(markers) > 0 {
		opt.MissingMarkers = markers
	}
	switch delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", delimiter)
	}
	opt.SheetName = sheetName
	if sheetIndex > 0 {
		opt.SheetIndex = sheetIndex
	}
	tbl, err := table.Load(path, opt)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return tbl, nil
}

func init() {
	rootCmd.AddCommand(assessCmd)
	assessCmd.Flags().StringVarP(&assessOutputPath, "output", "o", "", "optional path to write the assessment (Markdown)")
	assessCmd.Flags().StringVar(&assessDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	assessCmd.Flags().IntVar(&assessTopN, "top-n", 0, "top values listed per categorical column")
	assessCmd.Flags().StringVar(&assessSheetName, "sheet-name", "", "XLSX: sheet name to load")
	assessCmd.Flags().IntVar(&assessSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
