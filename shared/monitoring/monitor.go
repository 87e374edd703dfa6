package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor tracks the outcome of the most recent analysis run. The API health
// endpoint reads it; request handlers write it.
type Monitor struct {
	mu             sync.RWMutex
	lastRunSuccess bool
	lastRunTime    time.Time
	lastSummary    string
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.mu.Lock()
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()
	m.lastSummary = summary
	m.mu.Unlock()

	log.Printf("Analysis completed - %s (took %v)", summary, duration)
}

// RecordPartialFailure notes a degraded run without flipping health status.
func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	log.Printf("PARTIAL FAILURE: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) RecordFailure(err error, duration time.Duration) {
	m.mu.Lock()
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
	m.lastSummary = err.Error()
	m.mu.Unlock()

	log.Printf("FAILURE: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) StatusSummary() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}
	if m.lastRunSuccess {
		return fmt.Sprintf("Last run ok: %s (%s)", m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary)
	}
	return fmt.Sprintf("Last run failed: %s (%s)", m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary)
}
