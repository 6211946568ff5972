package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestShouldShowFlags(t *testing.T) {
	if ShouldShow(true, true) {
		t.Fatal("--no-progress must win over --progress")
	}
	if !ShouldShow(true, false) {
		t.Fatal("--progress should force progress output")
	}
}

func TestBarAdvanceIsSequential(t *testing.T) {
	const workers = 64
	bar := New(&bytes.Buffer{}, workers, false)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			bar.Advance()
		}()
	}
	wg.Wait()

	if got := bar.Count(); got != workers {
		t.Fatalf("count mismatch: got=%d want=%d", got, workers)
	}
}

func TestBarRendersAndClears(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, 4, true)
	bar.Advance()
	bar.Advance()
	if !strings.Contains(buf.String(), "[progress] 2/4 (50%)") {
		t.Fatalf("unexpected progress line: %q", buf.String())
	}
	buf.Reset()
	bar.Done()
	if buf.String() != "\r\033[K" {
		t.Fatalf("Done should clear the line, got %q", buf.String())
	}
}

func TestBarDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, 2, false)
	bar.Advance()
	bar.Done()
	if buf.Len() != 0 {
		t.Fatalf("disabled bar wrote output: %q", buf.String())
	}
}

func TestPercentClampsTo100(t *testing.T) {
	if got := percent(5, 4); got != 100 {
		t.Fatalf("5/4 should clamp to 100%%: got=%d", got)
	}
	if got := percent(0, 0); got != 100 {
		t.Fatalf("empty total should report 100%%: got=%d", got)
	}
}
