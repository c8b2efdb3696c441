package sheet

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// loadCSV reads the header and the business-name column from a CSV file.
func loadCSV(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "sheet: open csv")
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "sheet: read csv header")
	}
	header = trimHeader(header)

	nameIdx, err := nameColumnIndex(header)
	if err != nil {
		return nil, err
	}

	input := &Input{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "sheet: read csv row")
		}
		if nameIdx < len(record) {
			input.Names = append(input.Names, record[nameIdx])
		} else {
			input.Names = append(input.Names, "")
		}
	}

	return input, nil
}
