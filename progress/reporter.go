// Package progress provides a timer-driven docent.ProgressReporter.
//
// The status lines it produces are cosmetic. They rotate through a fixed
// set of phrases so the user sees that work is ongoing while a remote call
// is outstanding; the remote call's return is the only completion signal.
package progress

import (
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/docent"
)

// DefaultInterval is the time between two status lines.
const DefaultInterval = 1500 * time.Millisecond

// crawlSuffixes are appended to a locator to suggest pages being visited.
var crawlSuffixes = []string{"", "/docs", "/guides", "/api", "/reference", "/sitemap.xml"}

// RotationFunc returns the lines to cycle through for a label.
// It must return at least one line.
type RotationFunc func(label string) []string

// DefaultRotation returns crawl-style lines for URL labels and an
// animated ellipsis for anything else.
func DefaultRotation(label string) []string {
	if strings.HasPrefix(label, "http://") || strings.HasPrefix(label, "https://") {
		base := strings.TrimSuffix(label, "/")
		lines := make([]string, 0, len(crawlSuffixes))
		for _, s := range crawlSuffixes {
			lines = append(lines, "Crawling "+base+s)
		}
		return lines
	}
	if label == "" {
		label = "Working"
	}
	return []string{label, label + ".", label + "..", label + "..."}
}

// Ensure Reporter implements docent.ProgressReporter at compile time.
var _ docent.ProgressReporter = (*Reporter)(nil)

// Reporter emits rotating status lines at a fixed interval.
type Reporter struct {
	Interval time.Duration
	Rotation RotationFunc
}

// NewReporter creates a Reporter with the default interval and rotation.
func NewReporter() *Reporter {
	return &Reporter{Interval: DefaultInterval, Rotation: DefaultRotation}
}

// Begin emits the first line immediately and then one line per interval.
// Every call starts from the beginning of the rotation.
func (r *Reporter) Begin(label string, emit docent.ProgressFunc) docent.ProgressHandle {
	h := &handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	if emit == nil {
		h.once.Do(func() { h.ended = true })
		close(h.done)
		return h
	}

	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	rotation := r.Rotation
	if rotation == nil {
		rotation = DefaultRotation
	}
	lines := rotation(label)
	if len(lines) == 0 {
		lines = []string{label}
	}

	go h.run(interval, lines, emit)
	return h
}

// handle owns one emitter goroutine.
type handle struct {
	mu    sync.Mutex
	ended bool

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

func (h *handle) run(interval time.Duration, lines []string, emit docent.ProgressFunc) {
	defer close(h.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		if !h.emit(emit, lines[i%len(lines)]) {
			return
		}
		select {
		case <-h.stop:
			return
		case <-ticker.C:
		}
	}
}

// emit calls fn unless the handle has ended. The check and the call
// happen under the same lock End takes.
func (h *handle) emit(fn docent.ProgressFunc, line string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ended {
		return false
	}
	fn(line)
	return true
}

// End stops emission and waits for the emitter goroutine to exit.
func (h *handle) End() {
	h.once.Do(func() {
		h.mu.Lock()
		h.ended = true
		h.mu.Unlock()
		close(h.stop)
	})
	<-h.done
}
