package clean

import "github.com/Kheene145/ML-coursework/internal/table"

// Dedupe removes rows that exactly duplicate an earlier row across all
// columns, keeping the first occurrence and preserving row order. It returns
// the deduplicated table and the number of rows removed. Running it twice
// yields the same table as running it once.
func Dedupe(t *table.Table) (*table.Table, int, error) {
	n := t.Nrow()
	keep := make([]bool, n)
	seen := make(map[string]struct{}, n)
	removed := 0
	for i := 0; i < n; i++ {
		k := t.RowKey(i)
		if _, ok := seen[k]; ok {
			removed++
			continue
		}
		seen[k] = struct{}{}
		keep[i] = true
	}
	if removed == 0 {
		return t.Clone(), 0, nil
	}
	out, err := t.Filter(keep)
	if err != nil {
		return nil, 0, err
	}
	return out, removed, nil
}
