package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler for tick-level insights.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name for the current frame.
func Add(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest entries of the current frame, slowest first.
// Example: "session.Render:4.2ms, layout.Reload:2ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
