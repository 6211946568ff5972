package engine

// ProtectedTokens are never case-converted when they stand alone in code.
var ProtectedTokens = [...]string{"__LINE__", "__FILE__", "__DATE__"}

// Span は行内の保護トークンの位置（両端を含むルーン添字）
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Contains(pos int) bool {
	return s.Start <= pos && pos <= s.End
}

// SpanTracker follows the next protected token of a single line. It is built
// per line and thrown away afterwards.
type SpanTracker struct {
	line []rune
	span Span
	done bool
}

func NewSpanTracker(line []rune) *SpanTracker {
	t := &SpanTracker{line: line}
	t.Advance(0)
	return t
}

// Advance moves the tracker to the first protected token starting at or
// after from. Once nothing is left the tracker stays exhausted.
func (t *SpanTracker) Advance(from int) {
	if t.done {
		return
	}
	best := Span{Start: len(t.line) + 1}
	for _, tok := range ProtectedTokens {
		sp, ok := FindBoundaryMatch(t.line, tok, from)
		if ok && sp.Start < best.Start {
			best = sp
		}
	}
	if best.Start > len(t.line) {
		t.done = true
		t.span = Span{}
		return
	}
	t.span = best
}

func (t *SpanTracker) Contains(pos int) bool {
	return !t.done && t.span.Contains(pos)
}

// Current returns the tracked span; ok is false once the tracker is exhausted.
func (t *SpanTracker) Current() (sp Span, ok bool) {
	return t.span, !t.done
}
