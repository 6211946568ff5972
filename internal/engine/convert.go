package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// Mode は変換方向（大文字化／小文字化）を表す
type Mode int

const (
	ModeUpper Mode = iota
	ModeLower
)

func (m Mode) String() string {
	if m == ModeLower {
		return "lower"
	}
	return "upper"
}

// ParseMode accepts "upper"/"lower" (and their single-letter forms).
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "upper", "u":
		return ModeUpper, nil
	case "lower", "l":
		return ModeLower, nil
	default:
		return ModeUpper, fmt.Errorf("invalid mode: %s", raw)
	}
}

// Stats は変更件数の累積値。呼び出し側が所有し、行ごとの走査に参照で渡す。
type Stats struct {
	LinesChanged int `json:"lines_changed"`
	CharsChanged int `json:"chars_changed"`
}

// Add merges another accumulator into s.
func (s *Stats) Add(o Stats) {
	s.LinesChanged += o.LinesChanged
	s.CharsChanged += o.CharsChanged
}

// Converter converts single characters under a fixed mode and records every
// change in the attached Stats.
type Converter struct {
	mode        Mode
	stats       *Stats
	lineChanged bool
}

// NewConverter returns a converter writing into stats. A nil stats pointer
// gets a private accumulator.
func NewConverter(mode Mode, stats *Stats) *Converter {
	if stats == nil {
		stats = &Stats{}
	}
	return &Converter{mode: mode, stats: stats}
}

func (c *Converter) Mode() Mode { return c.mode }

func (c *Converter) Stats() *Stats { return c.stats }

// ResetLine marks the start of a new line. LinesChanged is bumped at most once
// between two calls.
func (c *Converter) ResetLine() {
	c.lineChanged = false
}

func (c *Converter) Convert(r rune) rune {
	var out rune
	if c.mode == ModeLower {
		out = unicode.ToLower(r)
	} else {
		out = unicode.ToUpper(r)
	}
	if out != r {
		c.stats.CharsChanged++
		if !c.lineChanged {
			c.lineChanged = true
			c.stats.LinesChanged++
		}
	}
	return out
}
