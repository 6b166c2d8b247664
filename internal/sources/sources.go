// Package sources loads the four input tables (participants, registrants,
// delegates, groups) from the file formats the office workflows produce:
// CSV exports from Zoom, XLSX exports from CiviCRM, and plain-text or YAML
// group lists. Loaders uphold the core's precondition contract: a required
// column missing from a file is a fatal validation error, while missing
// values in individual rows become empty strings.
package sources

import "strings"

// headerIndex maps trimmed header names to their column positions. When a
// header occurs twice the first occurrence wins.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

// cell returns the trimmed value at column i, or an empty string when the
// row is too short. Sparse rows are expected, not an error.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
