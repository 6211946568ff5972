package termcolor

import (
	"strconv"
	"strings"
)

// basic 8-colour foreground indices
const (
	Red    = 1
	Green  = 2
	Yellow = 3
	Cyan   = 6
)

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	// FG is a basic colour index (0-7); nil keeps the terminal default.
	FG *int
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 4)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.FG != nil {
		codes = append(codes, "3"+strconv.Itoa(*s.FG))
	}
	return codes
}

func fg(c int) *int { return &c }

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// CountStyle highlights non-zero change counters and dims zeros.
func CountStyle(n int) Style {
	if n == 0 {
		return Style{Dim: true}
	}
	return Style{FG: fg(Yellow)}
}

// StatusStyle colours the per-file status column.
func StatusStyle(status string) Style {
	switch status {
	case "changed", "would change":
		return Style{FG: fg(Cyan)}
	case "error":
		return Style{Bold: true, FG: fg(Red)}
	case "unchanged":
		return Style{Dim: true}
	default:
		return Style{FG: fg(Green)}
	}
}
