package pipeline

import (
	"math"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"
)

// renderSample is one finished render. Samples are kept in the order they
// were recorded, which is also time order.
type renderSample struct {
	at     time.Time
	ms     int64
	bytes  int
	format string
}

// StatsSnapshot aggregates the renders inside the stats window.
type StatsSnapshot struct {
	Count      int     `json:"count"`
	MinMs      int64   `json:"min_ms"`
	MaxMs      int64   `json:"max_ms"`
	AvgMs      float64 `json:"avg_ms"`
	P50Ms      float64 `json:"p50_ms"`
	P95Ms      float64 `json:"p95_ms"`
	P99Ms      float64 `json:"p99_ms"`
	TotalBytes int64   `json:"total_bytes"`
	// BytesPerSec is RTF output per second of render time.
	BytesPerSec float64        `json:"bytes_per_sec"`
	Formats     map[string]int `json:"formats"`
}

// RenderStats keeps the renders of the last window for the stats endpoint.
type RenderStats struct {
	mu      sync.Mutex
	window  time.Duration
	samples []renderSample
}

func NewRenderStats(window time.Duration) *RenderStats {
	if window <= 0 {
		window = time.Hour
	}
	return &RenderStats{window: window}
}

// Record adds one render of filename that took elapsed and produced
// outputBytes of RTF.
func (s *RenderStats) Record(filename string, elapsed time.Duration, outputBytes int) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if format == "" {
		format = "unknown"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.expire(now)
	s.samples = append(s.samples, renderSample{
		at:     now,
		ms:     max(elapsed.Milliseconds(), 0),
		bytes:  outputBytes,
		format: format,
	})
}

func (s *RenderStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expire(time.Now())
	snap := StatsSnapshot{Count: len(s.samples), Formats: map[string]int{}}
	if snap.Count == 0 {
		return snap
	}

	durations := make([]int64, len(s.samples))
	var totalMs int64
	for i, r := range s.samples {
		durations[i] = r.ms
		totalMs += r.ms
		snap.TotalBytes += int64(r.bytes)
		snap.Formats[r.format]++
	}
	slices.Sort(durations)

	snap.MinMs = durations[0]
	snap.MaxMs = durations[len(durations)-1]
	snap.AvgMs = float64(totalMs) / float64(snap.Count)
	snap.P50Ms = quantile(durations, 0.50)
	snap.P95Ms = quantile(durations, 0.95)
	snap.P99Ms = quantile(durations, 0.99)
	if totalMs > 0 {
		snap.BytesPerSec = float64(snap.TotalBytes) * 1000 / float64(totalMs)
	}
	return snap
}

// expire drops the samples recorded before the window. s.mu must be held.
func (s *RenderStats) expire(now time.Time) {
	cutoff := now.Add(-s.window)
	keep := sort.Search(len(s.samples), func(i int) bool {
		return !s.samples[i].at.Before(cutoff)
	})
	if keep > 0 {
		s.samples = slices.Delete(s.samples, 0, keep)
	}
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []int64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	if lo >= len(sorted)-1 {
		return float64(sorted[len(sorted)-1])
	}
	if lo < 0 {
		return float64(sorted[0])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
