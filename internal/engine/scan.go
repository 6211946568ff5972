package engine

import (
	"context"
	"strings"
	"unicode/utf8"
)

// StateKind enumerates the lexical states of the line scanner.
type StateKind uint8

const (
	StateActive StateKind = iota
	StateQuote
	StateComment
	StateEscape
	StateProtected
)

func (k StateKind) String() string {
	switch k {
	case StateQuote:
		return "quote"
	case StateComment:
		return "comment"
	case StateEscape:
		return "escape"
	case StateProtected:
		return "protected"
	default:
		return "active"
	}
}

// State is the scanner state at one character position. Quote holds the
// delimiter of the open literal for StateQuote, and the delimiter to return
// to for StateEscape.
type State struct {
	Kind  StateKind
	Quote rune
}

// Resume is the state an escape returns to.
func (s State) Resume() State {
	return State{Kind: StateQuote, Quote: s.Quote}
}

// Transition is the outcome of feeding one character to the scanner.
type Transition struct {
	// Convert is true when the character is emitted case-converted.
	Convert bool
	Next    State
	// Advance asks the caller to move the span tracker to pos+1.
	Advance bool
}

// Step is the transition function of the line scanner. inSpan reports whether
// a position lies inside the current protected span.
func Step(s State, r rune, pos int, inSpan func(int) bool) Transition {
	switch s.Kind {
	case StateQuote:
		switch {
		case r == s.Quote:
			// the span check runs on the closing quote itself
			if inSpan(pos) {
				return Transition{Next: State{Kind: StateProtected}}
			}
			return Transition{Next: State{Kind: StateActive}}
		case r == '\\':
			return Transition{Next: State{Kind: StateEscape, Quote: s.Quote}}
		default:
			return Transition{Next: s}
		}
	case StateComment:
		return Transition{Next: s}
	case StateEscape:
		return Transition{Next: s.Resume()}
	case StateProtected:
		if inSpan(pos) {
			return Transition{Next: s}
		}
		return Transition{Next: State{Kind: StateActive}, Advance: true}
	default:
		switch {
		case r == '\'' || r == '"':
			return Transition{Convert: true, Next: State{Kind: StateQuote, Quote: r}}
		case r == '!':
			return Transition{Convert: true, Next: State{Kind: StateComment}}
		case inSpan(pos):
			return Transition{Convert: true, Next: State{Kind: StateProtected}}
		default:
			return Transition{Convert: true, Next: s}
		}
	}
}

// IsMarkerLine reports whether a line is a full-line comment or a directive,
// decided by its first column only.
func IsMarkerLine(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case 'C', 'c', 'D', 'd', '!', '#':
		return true
	}
	return false
}

// ScanLine returns line with its code characters case-converted by conv.
// String literals, escapes, trailing comments and protected tokens are kept
// as they are. Marker lines are returned untouched and do not count towards
// the statistics.
func ScanLine(line string, conv *Converter) string {
	if IsMarkerLine(line) {
		return line
	}
	conv.ResetLine()
	tracker := NewSpanTracker([]rune(line))

	var b strings.Builder
	b.Grow(len(line))
	st := State{Kind: StateActive}
	pos := 0
	for i, r := range line {
		t := Step(st, r, pos, tracker.Contains)
		switch {
		case r == utf8.RuneError && !isEncodedRuneError(line[i:]):
			b.WriteByte(line[i])
		case t.Convert:
			b.WriteRune(conv.Convert(r))
		default:
			b.WriteRune(r)
		}
		if t.Advance {
			tracker.Advance(pos + 1)
		}
		st = t.Next
		pos++
	}
	return b.String()
}

// ScanLines converts every line in order. The context is checked between
// lines only.
func ScanLines(ctx context.Context, lines []string, conv *Converter) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = ScanLine(line, conv)
	}
	return out, nil
}

// isEncodedRuneError distinguishes a literal U+FFFD from an invalid byte.
func isEncodedRuneError(s string) bool {
	_, size := utf8.DecodeRuneInString(s)
	return size > 1
}
