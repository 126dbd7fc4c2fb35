package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// CSVOptions configures the CSV survey reader. Brazilian exports commonly
// use semicolons, so that is the default delimiter.
type CSVOptions struct {
	Delimiter rune // default ';'
	Comment   rune // comment character (0 = none)
}

// ReadCSV streams a CSV survey export and maps its rows to company
// records. The first row is the header. The reader is consumed row by row,
// so arbitrarily large exports stay cheap.
func ReadCSV(ctx context.Context, r io.Reader, opts CSVOptions) ([]model.CompanyRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.FieldsPerRecord = -1 // survey rows can be ragged

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("ingest: empty csv input")
	}
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv header")
	}

	var rows [][]string
	for {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "ingest: csv read cancelled")
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "ingest: read csv row")
		}
		for i, field := range row {
			row[i] = strings.TrimSpace(field)
		}
		rows = append(rows, row)
	}

	return RecordsFromRows(headers, rows)
}
