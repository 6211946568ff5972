// Package textutil measures and fits text by terminal display width.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC escape sequences.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the display width of s, ignoring escape sequences and
// measuring one grapheme cluster at a time.
func VisibleWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateLeft shortens s to width w by dropping grapheme clusters from the
// front, so the end of a path (its file name) stays visible. The ellipsis is
// prepended when it fits.
func TruncateLeft(s string, w int, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	plain := StripANSI(s)
	if VisibleWidth(plain) <= w {
		return plain
	}
	var segs []string
	var widths []int
	g := uniseg.NewGraphemes(plain)
	for g.Next() {
		segs = append(segs, g.Str())
		widths = append(widths, runewidth.StringWidth(g.Str()))
	}
	budget := w - runewidth.StringWidth(ellipsis)
	if budget < 0 {
		budget, ellipsis = w, ""
	}
	used := 0
	i := len(segs)
	for i > 0 && used+widths[i-1] <= budget {
		i--
		used += widths[i]
	}
	return ellipsis + strings.Join(segs[i:], "")
}

// PadRight pads s on the right with spaces up to display width w.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft pads s on the left with spaces up to display width w.
func PadLeft(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
