package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	cases := []struct {
		op   fsnotify.Op
		want bool
	}{
		{fsnotify.Write, true},
		{fsnotify.Create, true},
		{fsnotify.Create | fsnotify.Chmod, true},
		{fsnotify.Remove, false},
		{fsnotify.Rename, false},
		{fsnotify.Chmod, false},
	}
	for _, tc := range cases {
		if got := Relevant(fsnotify.Event{Name: "a.for", Op: tc.op}); got != tc.want {
			t.Fatalf("Relevant(%v)=%v want %v", tc.op, got, tc.want)
		}
	}
}

func TestMatchTrackedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "a.for")
	w, err := New([]string{tracked}, func(context.Context, string) {}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p, ok := w.match(fsnotify.Event{Name: tracked, Op: fsnotify.Write}); !ok || p != tracked {
		t.Fatalf("tracked file not matched: %q %v", p, ok)
	}
	if _, ok := w.match(fsnotify.Event{Name: filepath.Join(dir, ".a.for.fortcase-123"), Op: fsnotify.Create}); ok {
		t.Fatal("temporary files must be ignored")
	}
	if _, ok := w.match(fsnotify.Event{Name: tracked, Op: fsnotify.Remove}); ok {
		t.Fatal("removal must be ignored")
	}
}

func TestNewDeduplicatesDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "a.for"), filepath.Join(dir, "b.for")}, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(w.dirs) != 1 || len(w.files) != 2 {
		t.Fatalf("unexpected watch set: dirs=%v files=%v", w.dirs, w.files)
	}
}

func TestRunCallsHandlerOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.for")
	if err := os.WriteFile(path, []byte("      x = 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := make(chan string, 4)
	w, err := New([]string{path}, func(_ context.Context, p string) { got <- p }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.SetSettle(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		t.Fatalf("Run exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not become ready")
	}

	if err := os.WriteFile(path, []byte("      y = 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case p := <-got:
		if p != path {
			t.Fatalf("handler got %q want %q", p, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
