package mock

import (
	"sync"

	"github.com/fwojciec/docent"
)

var _ docent.ProgressReporter = (*ProgressReporter)(nil)

// ProgressReporter is a mock implementation of docent.ProgressReporter.
type ProgressReporter struct {
	BeginFn func(label string, emit docent.ProgressFunc) docent.ProgressHandle
}

func (r *ProgressReporter) Begin(label string, emit docent.ProgressFunc) docent.ProgressHandle {
	return r.BeginFn(label, emit)
}

var _ docent.ProgressHandle = (*ProgressHandle)(nil)

// ProgressHandle is a mock implementation of docent.ProgressHandle
// that counts calls to End.
type ProgressHandle struct {
	mu    sync.Mutex
	ended int
}

func (h *ProgressHandle) End() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ended++
}

// EndCalls returns how many times End was called.
func (h *ProgressHandle) EndCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ended
}
