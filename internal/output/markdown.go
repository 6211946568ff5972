package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/fortcase/internal/engine"
)

// WriteMarkdownTable renders one row per file as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, res *engine.Result) error {
	if err := writeMarkdownRow(w, Columns); err != nil {
		return err
	}
	sep := make([]string, len(Columns))
	for i := range sep {
		sep[i] = "---"
	}
	if err := writeMarkdownRow(w, sep); err != nil {
		return err
	}
	for _, row := range Rows(res) {
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		if err := writeMarkdownRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	return err
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
