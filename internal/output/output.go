// Package output renders a conversion Result in the supported report formats.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phyten/fortcase/internal/engine"
)

// Columns of the tabular formats (csv, markdown).
var Columns = []string{"file", "lines", "lines_changed", "chars_changed", "changed", "written", "error"}

// Write dispatches to the writer for format. format must already be
// normalised (see opts.NormalizeOutput).
func Write(w io.Writer, res *engine.Result, format string, text TextOptions) error {
	switch format {
	case "", "text":
		return WriteText(w, res, text)
	case "json":
		return WriteJSON(w, res)
	case "ndjson":
		return WriteNDJSON(w, res)
	case "csv":
		return WriteCSV(w, res)
	case "markdown":
		return WriteMarkdownTable(w, res)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// SummaryLine is the one-line report of a run.
func SummaryLine(total engine.Stats) string {
	return fmt.Sprintf("Lines changed: %d,   chars changed: %d", total.LinesChanged, total.CharsChanged)
}

// Rows flattens the result into Columns order: converted files first, then
// failures.
func Rows(res *engine.Result) [][]string {
	if res == nil {
		return nil
	}
	rows := make([][]string, 0, len(res.Files)+len(res.Errors))
	for _, f := range res.Files {
		rows = append(rows, []string{
			f.File,
			strconv.Itoa(f.Lines),
			strconv.Itoa(f.LinesChanged),
			strconv.Itoa(f.CharsChanged),
			strconv.FormatBool(f.Changed),
			strconv.FormatBool(f.Written),
			"",
		})
	}
	for _, e := range res.Errors {
		rows = append(rows, []string{e.File, "", "", "", "", "", e.Message})
	}
	return rows
}
