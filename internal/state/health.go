package state

import (
	"sync"
	"time"
)

// Health records whether the classification backend answered its last
// reachability check. It is independent of the request lifecycle.
type Health struct {
	mu        sync.RWMutex
	checked   bool
	lastErr   error
	checkedAt time.Time
	failures  int
}

// HealthSnapshot is a copy of Health for rendering.
type HealthSnapshot struct {
	Checked   bool
	Reachable bool
	CheckedAt time.Time
	Failures  int // consecutive failed checks
}

// Record stores the result of one check.
func (h *Health) Record(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.checked = true
	h.lastErr = err
	h.checkedAt = time.Now()
	if err != nil {
		h.failures++
	} else {
		h.failures = 0
	}
}

// Snapshot returns a consistent copy of the health state.
func (h *Health) Snapshot() HealthSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return HealthSnapshot{
		Checked:   h.checked,
		Reachable: h.checked && h.lastErr == nil,
		CheckedAt: h.checkedAt,
		Failures:  h.failures,
	}
}
