package table

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes the table to path with a header row, missing values as
// empty cells.
func WriteCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	return w.Error()
}
