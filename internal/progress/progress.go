// Package progress rate-limits progress reporting from long engine
// scans. Brute-force index computations can visit millions of coalitions
// or orderings; workers report at batch granularity and the Reporter
// turns that firehose into at most one log line per interval.
package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Reporter logs scan progress at a bounded rate. Safe for concurrent use
// by engine workers. The clock is injectable for deterministic tests.
type Reporter struct {
	logger   *log.Logger
	clock    quartz.Clock
	interval time.Duration
	label    string

	mu   sync.Mutex
	last time.Time
}

// New creates a reporter that logs under the given label at most once
// per interval, using the real clock.
func New(logger *log.Logger, label string, interval time.Duration) *Reporter {
	return NewWithClock(logger, label, interval, quartz.NewReal())
}

// NewWithClock is New with an explicit clock.
func NewWithClock(logger *log.Logger, label string, interval time.Duration, clock quartz.Clock) *Reporter {
	return &Reporter{
		logger:   logger,
		clock:    clock,
		interval: interval,
		label:    label,
	}
}

// Update records progress and logs it if enough time has passed since the
// last line. Matches the callback signature of voting.WithProgress.
func (r *Reporter) Update(done, total uint64) {
	now := r.clock.Now()

	r.mu.Lock()
	if !r.last.IsZero() && now.Sub(r.last) < r.interval {
		r.mu.Unlock()
		return
	}
	r.last = now
	r.mu.Unlock()

	r.logger.Info(r.label,
		"done", done,
		"total", total,
		"pct", fmt.Sprintf("%.1f%%", percent(done, total)),
	)
}

func percent(done, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
