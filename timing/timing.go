// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package timing provides a scoped timer that accumulates elapsed-time
// statistics across calls, and human-readable throughput formatting.
//
// Typical use, timing every run of a compiler pass:
//
//	var convertStats timing.Stats
//
//	func pass() {
//		defer timing.Start("convert_dimensions", &convertStats).Stop()
//		...
//	}
package timing

import (
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"
)

// Stats accumulates elapsed-time statistics of a repeated operation. Safe for
// concurrent use; the zero value is ready to use.
type Stats struct {
	mu          sync.Mutex
	cumulative  time.Duration
	max         time.Duration
	timesCalled int64
}

// accumulate records one elapsed duration and returns the updated totals.
func (s *Stats) accumulate(elapsed time.Duration) (cumulative, max time.Duration, timesCalled int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cumulative += elapsed
	if elapsed > s.max {
		s.max = elapsed
	}
	s.timesCalled++
	return s.cumulative, s.max, s.timesCalled
}

// Snapshot returns the accumulated totals so far.
func (s *Stats) Snapshot() (cumulative, max time.Duration, timesCalled int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cumulative, s.max, s.timesCalled
}

// ScopedTimer measures the time from Start until Stop and logs it along with
// the accumulated statistics of its Stats.
type ScopedTimer struct {
	label   string
	stats   *Stats
	start   time.Time
	enabled bool
}

// Start a timer with the given label, accumulating into stats. The timer is
// disabled (and free) unless klog verbosity 1 is enabled.
//
// Use `defer timing.Start(label, stats).Stop()` to time a whole function.
func Start(label string, stats *Stats) *ScopedTimer {
	t := &ScopedTimer{label: label, stats: stats, enabled: klog.V(1).Enabled()}
	if t.enabled {
		t.start = time.Now()
	}
	return t
}

// Stop the timer, record the elapsed time into the Stats and log it. Stopping
// an already stopped (or disabled) timer is a no-op.
func (t *ScopedTimer) Stop() {
	if !t.enabled {
		return
	}
	t.enabled = false
	elapsed := time.Since(t.start)
	cumulative, max, timesCalled := t.stats.accumulate(elapsed)
	klog.Infof("%s time: %s (cumulative: %s, max: %s, #called: %s)",
		t.label, elapsed.Round(time.Microsecond), cumulative.Round(time.Microsecond),
		max.Round(time.Microsecond), humanize.Comma(timesCalled))
}

// ThroughputString formats a number of operations over an elapsed time as a
// human-readable rate, e.g. ThroughputString(3e10, time.Second, "FLOP") ->
// "30 GFLOP/s". A non-positive elapsed time yields "NaN <suffix>/s".
func ThroughputString(ops float64, elapsed time.Duration, suffix string) string {
	if elapsed <= 0 {
		return "NaN " + suffix + "/s"
	}
	return humanize.SIWithDigits(ops/elapsed.Seconds(), 2, suffix+"/s")
}
