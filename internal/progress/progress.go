package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ShouldShow decides whether progress is drawn: never with no, always with
// force, otherwise only when both stdout and stderr are terminals.
func ShouldShow(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

// Bar is a single-line file counter with an ETA. It is safe for concurrent
// Advance calls from workers.
type Bar struct {
	mu      sync.Mutex
	w       io.Writer
	est     *Estimator
	enabled bool
}

func New(w io.Writer, total int, enabled bool) *Bar {
	if w == nil {
		w = os.Stderr
	}
	return &Bar{w: w, est: NewEstimator(total, Config{}), enabled: enabled}
}

// Advance counts one finished file and redraws the line.
func (b *Bar) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap := b.est.Advance(1)
	if !b.enabled {
		return
	}
	_, _ = fmt.Fprintf(b.w, "\r\033[K[progress] %d/%d (%d%%) ETA %s", snap.Done, snap.Total, percent(snap.Done, snap.Total), formatETA(snap))
}

func formatETA(s Snapshot) string {
	if s.Warmup || s.Remaining == 0 {
		return "-"
	}
	d := s.ETA.Round(time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

// Done clears the progress line.
func (b *Bar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return
	}
	_, _ = fmt.Fprint(b.w, "\r\033[K")
}

func (b *Bar) Count() int {
	return b.est.Snapshot().Done
}

func percent(a, b int) int {
	if b <= 0 || a >= b {
		return 100
	}
	return int(float64(a) * 100 / float64(b))
}
