package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/fortcase/internal/engine"
	"github.com/phyten/fortcase/internal/termcolor"
	"github.com/phyten/fortcase/internal/textutil"
)

const defaultPathWidth = 60

type TextOptions struct {
	Color bool
	// PathWidth caps the file column; longer paths lose their front part.
	PathWidth int
}

// WriteText prints the human report. A run over a single file prints only the
// summary line (nothing when that file failed); several files get an aligned
// table, a file count line and the summary line.
func WriteText(w io.Writer, res *engine.Result, o TextOptions) error {
	if res.FileCount+res.ErrorCount == 1 {
		if res.FileCount == 0 {
			return nil
		}
		if f := res.Files[0]; res.Check && f.Changed {
			if _, err := fmt.Fprintf(w, "would change: %s\n", f.File); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, SummaryLine(res.Total))
		return err
	}
	if res.FileCount+res.ErrorCount > 1 {
		if err := writeTable(w, res, o); err != nil {
			return err
		}
		changed := "changed"
		if res.Check {
			changed = "would change"
		}
		if _, err := fmt.Fprintf(w, "Files: %d processed, %d %s, %d failed\n", res.FileCount, res.ChangedFiles, changed, res.ErrorCount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, SummaryLine(res.Total))
	return err
}

type textRow struct {
	cells        [5]string
	linesChanged int
	charsChanged int
	failed       bool
}

func status(f engine.FileResult, check bool) string {
	switch {
	case !f.Changed:
		return "unchanged"
	case check:
		return "would change"
	default:
		return "changed"
	}
}

func writeTable(w io.Writer, res *engine.Result, o TextOptions) error {
	pathWidth := o.PathWidth
	if pathWidth <= 0 {
		pathWidth = defaultPathWidth
	}
	rows := make([]textRow, 0, res.FileCount+res.ErrorCount)
	for _, f := range res.Files {
		rows = append(rows, textRow{
			cells: [5]string{
				textutil.TruncateLeft(f.File, pathWidth, "…"),
				status(f, res.Check),
				strconv.Itoa(f.Lines),
				strconv.Itoa(f.LinesChanged),
				strconv.Itoa(f.CharsChanged),
			},
			linesChanged: f.LinesChanged,
			charsChanged: f.CharsChanged,
		})
	}
	for _, e := range res.Errors {
		rows = append(rows, textRow{
			cells:  [5]string{textutil.TruncateLeft(e.File, pathWidth, "…"), "error", "-", "-", "-"},
			failed: true,
		})
	}

	headers := [5]string{"FILE", "STATUS", "LINES", "LINES CHANGED", "CHARS CHANGED"}
	var widths [5]int
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, r := range rows {
		for i, cell := range r.cells {
			widths[i] = max(widths[i], textutil.VisibleWidth(cell))
		}
	}

	head := make([]string, len(headers))
	for i, h := range headers {
		if i < 2 {
			h = textutil.PadRight(h, widths[i])
		} else {
			h = textutil.PadLeft(h, widths[i])
		}
		head[i] = termcolor.Apply(termcolor.HeaderStyle(), h, o.Color)
	}
	if _, err := fmt.Fprintln(w, strings.Join(head, "  ")); err != nil {
		return err
	}

	for _, r := range rows {
		cells := []string{
			textutil.PadRight(r.cells[0], widths[0]),
			termcolor.Apply(termcolor.StatusStyle(r.cells[1]), textutil.PadRight(r.cells[1], widths[1]), o.Color),
			textutil.PadLeft(r.cells[2], widths[2]),
			countCell(r.cells[3], r.linesChanged, widths[3], r.failed, o.Color),
			countCell(r.cells[4], r.charsChanged, widths[4], r.failed, o.Color),
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func countCell(text string, n, width int, failed, color bool) string {
	padded := textutil.PadLeft(text, width)
	if failed {
		return padded
	}
	return termcolor.Apply(termcolor.CountStyle(n), padded, color)
}
