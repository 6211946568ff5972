package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/fortcase/internal/engine"
)

// WriteCSV renders one row per file as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, res *engine.Result) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(Rows(res)); err != nil {
		return err
	}
	return writer.Error()
}
