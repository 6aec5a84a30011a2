package dataset

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
)

// csvRow is one record from the CSV streamer with its 1-based line number.
type csvRow struct {
	line   int
	fields []string
}

// streamCSV reads delimited records and sends them on a channel. The caller
// must drain the row channel; the error channel receives at most one error.
// Both channels are closed when reading stops.
func streamCSV(ctx context.Context, r io.Reader, delimiter rune) (<-chan csvRow, <-chan error) {
	rowCh := make(chan csvRow, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		reader.Comma = delimiter
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "csv: read row")
				return
			}
			line, _ := reader.FieldPos(0)

			select {
			case rowCh <- csvRow{line: line, fields: record}:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}
