// Package sheet loads business names from CSV or XLSX input and writes
// canonical records back out as a workbook, preserving the input's column
// order ahead of the fields the pipeline adds.
package sheet

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/registry-enrich/internal/model"
)

// NameColumn is the required input column holding business names.
const NameColumn = "Business Name"

// Input holds the loaded business names and the input file's column order.
type Input struct {
	Names   []string
	Columns []string
}

// Load reads the input file by extension. Failure to load the input list is
// the only fatal condition of a run.
func Load(path string) (*Input, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, eris.Errorf("sheet: input must be .csv or .xlsx, got %q", filepath.Ext(path))
	}
}

// nameColumnIndex finds the business-name column in a header row.
func nameColumnIndex(header []string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == NameColumn {
			return i, nil
		}
	}
	return 0, eris.Errorf("sheet: input file must contain a %q column", NameColumn)
}

// trimHeader returns the header cells with surrounding whitespace removed,
// dropping trailing empty cells spreadsheet tools like to leave behind.
func trimHeader(header []string) []string {
	out := make([]string, 0, len(header))
	for _, col := range header {
		out = append(out, strings.TrimSpace(col))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// OutputColumns returns the final column order: the input's own columns
// first, then any canonical fields the input did not already carry.
func OutputColumns(inputColumns []string) []string {
	seen := make(map[string]struct{}, len(inputColumns))
	columns := make([]string, 0, len(inputColumns))
	for _, col := range inputColumns {
		columns = append(columns, col)
		seen[col] = struct{}{}
	}
	for _, col := range model.Columns() {
		if _, ok := seen[col]; !ok {
			columns = append(columns, col)
		}
	}
	return columns
}

// CheckpointPath returns the temp file used for progress checkpoints next
// to the final output path.
func CheckpointPath(outputPath string) string {
	dir, base := filepath.Split(outputPath)
	return filepath.Join(dir, "temp_"+base)
}
