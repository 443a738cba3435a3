package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// LoadOptions controls how a delimited or spreadsheet source becomes a Table.
type LoadOptions struct {
	// Delimiter for CSV/TSV. If 0, ',' is used ('\t' for .tsv files).
	Delimiter rune
	// MissingMarkers are cell values treated as missing.
	MissingMarkers []string
	// SheetName selects an XLSX sheet by name; empty selects by SheetIndex.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet position used when SheetName is empty.
	SheetIndex int
}

// DefaultLoadOptions returns the markers and sheet selection used when the
// caller does not override them.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MissingMarkers: []string{"", "NA", "N/A", "NaN", "null"},
		SheetIndex:     1,
	}
}

// Load reads a tabular file into a Table, dispatching on the file extension:
// .xlsx goes through the spreadsheet reader, everything else is treated as
// delimited text with a header row.
func Load(path string, opt LoadOptions) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path, opt)
	}
	return LoadCSV(path, opt)
}

// LoadCSV reads a delimited file with a header row into a Table. Column
// types are detected from the data; cells matching a missing marker are
// recorded in the column's missing mask.
func LoadCSV(path string, opt LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			delim = '\t'
		}
	}
	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(markers(opt)),
		dataframe.WithDelimiter(delim),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}
	return fromDataFrame(df)
}

// LoadXLSX reads one sheet of an XLSX workbook into a Table. The first row
// is the header; short rows are padded with missing cells.
func LoadXLSX(path string, opt LoadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	sheet := opt.SheetName
	if sheet == "" {
		idx := opt.SheetIndex
		if idx <= 0 {
			idx = 1
		}
		if idx > len(sheets) {
			return nil, fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(sheets))
		}
		sheet = sheets[idx-1]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	ncol := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < ncol {
			padded := make([]string, ncol)
			copy(padded, row)
			row = padded
		} else if len(row) > ncol {
			row = row[:ncol]
		}
		records = append(records, row)
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(markers(opt)),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("load sheet %q: %w", sheet, df.Err)
	}
	return fromDataFrame(df)
}

func markers(opt LoadOptions) []string {
	if opt.MissingMarkers != nil {
		return opt.MissingMarkers
	}
	return DefaultLoadOptions().MissingMarkers
}

// fromDataFrame projects a gota dataframe into the internal column model:
// int/float series become numeric columns, everything else categorical.
func fromDataFrame(df dataframe.DataFrame) (*Table, error) {
	t := &Table{}
	for _, name := range df.Names() {
		s := df.Col(name)
		n := s.Len()
		col := Column{Name: name, Missing: make([]bool, n)}
		switch s.Type() {
		case series.Int, series.Float:
			col.Kind = Numeric
			col.Floats = make([]float64, n)
			for i := 0; i < n; i++ {
				e := s.Elem(i)
				if e.IsNA() {
					col.Missing[i] = true
					continue
				}
				col.Floats[i] = e.Float()
			}
		default:
			col.Kind = Categorical
			col.Strings = make([]string, n)
			for i := 0; i < n; i++ {
				e := s.Elem(i)
				if e.IsNA() {
					col.Missing[i] = true
					continue
				}
				col.Strings[i] = e.String()
			}
		}
		if err := t.AppendColumn(col); err != nil {
			return nil, fmt.Errorf("project column: %w", err)
		}
	}
	return t, nil
}
