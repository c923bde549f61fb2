package lineart

import "log/slog"

// Progress receives the completed fraction of a long-running generator.
// It is best-effort: a panicking callback is recovered and ignored.
type Progress func(fraction float64)

// ReportProgress invokes p with f clamped to [0, 1]. A nil p is a no-op.
// Panics raised by p are recovered and logged so they never abort
// generation.
func ReportProgress(p Progress, f float64) {
	if p == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("lineart: progress callback panicked", slog.Any("panic", r))
		}
	}()
	p(Clamp(f, 0, 1))
}

// Ticker reports progress every n units of work out of a known total.
type Ticker struct {
	progress Progress
	every    int
	total    int
	done     int
}

// NewTicker creates a Ticker for total units of work. An interval below 1
// reports on every unit.
func NewTicker(o Options, total int) *Ticker {
	if total < 1 {
		total = 1
	}
	return &Ticker{progress: o.Progress, every: max(1, o.ProgressEvery), total: total}
}

// Tick records one unit of work and reports at the configured interval.
func (t *Ticker) Tick() {
	t.done++
	if t.progress != nil && t.done%t.every == 0 {
		ReportProgress(t.progress, float64(t.done)/float64(t.total))
	}
}

// Finish reports 1.0.
func (t *Ticker) Finish() {
	ReportProgress(t.progress, 1)
}
