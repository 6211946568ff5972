package engine

import "testing"

func TestSpanTrackerFollowsTokensInOrder(t *testing.T) {
	tr := NewSpanTracker([]rune("__LINE__ __FILE__"))
	sp, ok := tr.Current()
	if !ok || sp != (Span{Start: 0, End: 7}) {
		t.Fatalf("first span mismatch: %+v ok=%v", sp, ok)
	}
	tr.Advance(8)
	sp, ok = tr.Current()
	if !ok || sp != (Span{Start: 9, End: 16}) {
		t.Fatalf("second span mismatch: %+v ok=%v", sp, ok)
	}
	tr.Advance(17)
	if _, ok := tr.Current(); ok {
		t.Fatal("tracker should be exhausted after the last token")
	}
}

func TestSpanTrackerEarliestTokenWins(t *testing.T) {
	tr := NewSpanTracker([]rune("x = __LINE__ + __DATE__"))
	sp, ok := tr.Current()
	if !ok || sp.Start != 4 {
		t.Fatalf("expected __LINE__ at 4, got %+v ok=%v", sp, ok)
	}
	tr = NewSpanTracker([]rune("x = __DATE__ + __LINE__"))
	sp, ok = tr.Current()
	if !ok || sp.Start != 4 {
		t.Fatalf("expected __DATE__ at 4, got %+v ok=%v", sp, ok)
	}
}

func TestSpanTrackerStaysExhausted(t *testing.T) {
	tr := NewSpanTracker([]rune("x = 1 + __FILE__"))
	tr.Advance(20)
	if _, ok := tr.Current(); ok {
		t.Fatal("expected exhausted tracker")
	}
	// rewinding must not revive it
	tr.Advance(0)
	if _, ok := tr.Current(); ok {
		t.Fatal("exhausted tracker came back to life")
	}
	if tr.Contains(8) {
		t.Fatal("exhausted tracker must not contain any position")
	}
}

func TestSpanTrackerEmptyLine(t *testing.T) {
	tr := NewSpanTracker(nil)
	if _, ok := tr.Current(); ok {
		t.Fatal("empty line has no protected span")
	}
	if tr.Contains(0) {
		t.Fatal("Contains(0) on empty line")
	}
}

func TestSpanContains(t *testing.T) {
	sp := Span{Start: 3, End: 10}
	for pos, want := range map[int]bool{2: false, 3: true, 7: true, 10: true, 11: false} {
		if got := sp.Contains(pos); got != want {
			t.Fatalf("Contains(%d)=%v want %v", pos, got, want)
		}
	}
}
