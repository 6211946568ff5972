package progress

import (
	"math"
	"sync"
	"time"
)

// Snapshot is the state of a run at one point in time.
type Snapshot struct {
	Total     int           `json:"total"`
	Done      int           `json:"done"`
	Remaining int           `json:"remaining"`
	Rate      float64       `json:"files_per_sec"`
	ETA       time.Duration `json:"eta"`
	Warmup    bool          `json:"warmup"`
	Elapsed   time.Duration `json:"elapsed"`
}

type Config struct {
	Alpha          float64
	WindowSize     int
	WarmupSamples  int
	WarmupDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		Alpha:          0.2,
		WindowSize:     32,
		WarmupSamples:  3,
		WarmupDuration: 500 * time.Millisecond,
	}
}

// Estimator predicts the remaining time from per-file throughput. The rate is
// the median of a sliding window of recent samples, falling back to an EMA.
// No ETA is reported until both warmup thresholds are reached.
type Estimator struct {
	mu         sync.Mutex
	cfg        Config
	now        func() time.Time
	start      time.Time
	lastUpdate time.Time
	total      int
	done       int
	ema        float64
	window     *window
}

func NewEstimator(total int, cfg Config) *Estimator {
	return newEstimatorAt(total, cfg, time.Now)
}

func newEstimatorAt(total int, cfg Config, now func() time.Time) *Estimator {
	base := DefaultConfig()
	if cfg.Alpha > 0 && cfg.Alpha <= 1 {
		base.Alpha = cfg.Alpha
	}
	if cfg.WindowSize > 0 {
		base.WindowSize = cfg.WindowSize
	}
	if cfg.WarmupSamples > 0 {
		base.WarmupSamples = cfg.WarmupSamples
	}
	if cfg.WarmupDuration > 0 {
		base.WarmupDuration = cfg.WarmupDuration
	}
	t := now()
	return &Estimator{
		cfg:        base,
		now:        now,
		start:      t,
		lastUpdate: t,
		total:      total,
		window:     newWindow(base.WindowSize),
	}
}

// Advance records delta finished files.
func (e *Estimator) Advance(delta int) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	if delta <= 0 {
		return e.snapshotLocked(now)
	}
	if now.Before(e.lastUpdate) {
		now = e.lastUpdate
	}
	dt := now.Sub(e.lastUpdate).Seconds()
	if dt <= 0 {
		dt = 1e-6
	}
	e.done += delta
	instant := float64(delta) / dt
	if math.IsNaN(instant) || math.IsInf(instant, 0) || instant < 0 {
		instant = 0
	}
	if e.ema == 0 {
		e.ema = instant
	} else {
		e.ema = e.cfg.Alpha*instant + (1-e.cfg.Alpha)*e.ema
	}
	e.window.Add(instant)
	e.lastUpdate = now
	return e.snapshotLocked(now)
}

func (e *Estimator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(e.now())
}

func (e *Estimator) snapshotLocked(now time.Time) Snapshot {
	remain := max(e.total-e.done, 0)
	elapsed := now.Sub(e.start)
	rate := e.window.Quantile(0.5)
	if rate <= 0 {
		rate = e.ema
	}
	warm := e.done >= e.cfg.WarmupSamples && elapsed >= e.cfg.WarmupDuration
	var eta time.Duration
	if warm && remain > 0 {
		eta = durationFrom(float64(remain), rate)
	}
	return Snapshot{
		Total:     e.total,
		Done:      e.done,
		Remaining: remain,
		Rate:      rate,
		ETA:       eta,
		Warmup:    !warm,
		Elapsed:   elapsed,
	}
}

func durationFrom(count, rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	seconds := count / rate
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0
	}
	if seconds > float64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}
