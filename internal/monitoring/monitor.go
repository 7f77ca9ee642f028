// Package monitoring tracks the outcome of analysis runs.
package monitoring

import (
	"fmt"
	"log"
	"time"
)

type Monitor struct {
	lastRunSuccess bool
	lastRunTime    time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()

	log.Printf("Run completed successfully - %s (took %v)", summary, duration)
}

// RecordPartialFailure logs a non-fatal problem (a skipped channel, a failed
// email) without changing the health status.
func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	log.Printf("PARTIAL FAILURE: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) RecordCriticalFailure(err error, duration time.Duration) {
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()

	log.Printf("CRITICAL FAILURE: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) IsHealthy() bool {
	if m.lastRunTime.IsZero() {
		return true // No runs yet
	}
	return m.lastRunSuccess
}

func (m *Monitor) StatusSummary() string {
	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}
	if m.lastRunSuccess {
		return fmt.Sprintf("Last run succeeded: %s", m.lastRunTime.Format("Jan 2 15:04"))
	}
	return fmt.Sprintf("Last run failed: %s", m.lastRunTime.Format("Jan 2 15:04"))
}
