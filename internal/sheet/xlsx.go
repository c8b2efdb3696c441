package sheet

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/registry-enrich/internal/model"
)

// loadXLSX reads the header and the business-name column from the first
// sheet of a workbook.
func loadXLSX(path string) (*Input, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "sheet: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("sheet: xlsx has no sheets")
	}

	rows := f.Sheets[0].Rows
	if len(rows) == 0 {
		return nil, eris.New("sheet: xlsx sheet is empty")
	}

	header := trimHeader(rowToStrings(rows[0]))
	nameIdx, err := nameColumnIndex(header)
	if err != nil {
		return nil, err
	}

	input := &Input{Columns: header}
	for _, row := range rows[1:] {
		cells := rowToStrings(row)
		if nameIdx < len(cells) {
			input.Names = append(input.Names, cells[nameIdx])
		} else {
			input.Names = append(input.Names, "")
		}
	}

	return input, nil
}

// WriteRecords writes canonical records to a workbook using the given
// column order (input columns first, new canonical fields after).
func WriteRecords(path string, inputColumns []string, records []model.CanonicalRecord) error {
	f := xlsx.NewFile()
	sh, err := f.AddSheet("Results")
	if err != nil {
		return eris.Wrap(err, "sheet: add sheet")
	}

	columns := OutputColumns(inputColumns)

	headerRow := sh.AddRow()
	for _, col := range columns {
		headerRow.AddCell().SetString(col)
	}

	for _, record := range records {
		row := sh.AddRow()
		for _, col := range columns {
			row.AddCell().SetString(record.Field(col))
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "sheet: save %s", path)
	}
	return nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = cell.String()
	}
	return cells
}
