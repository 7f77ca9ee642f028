// Package scheduler runs an agent on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/monitoring"

	"github.com/robfig/cron/v3"
)

// Agent is anything the scheduler can run repeatedly.
type Agent interface {
	Name() string
	Initialize(ctx context.Context) error
	RunOnce(ctx context.Context) error
}

// Scheduler executes an Agent on a cron expression, skipping a tick when the
// previous run is still in flight.
type Scheduler struct {
	spec    string
	agent   Agent
	monitor *monitoring.Monitor
	cron    *cron.Cron
}

func New(spec string, agent Agent) *Scheduler {
	return &Scheduler{
		spec:    spec,
		agent:   agent,
		monitor: monitoring.NewMonitor(),
		// Prevent overlapping runs
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

// Start blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.agent.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize agent: %w", err)
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.RunOnce(ctx); err != nil {
			log.Printf("Error running scheduled job for %s: %v", s.agent.Name(), err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	log.Printf("Scheduler started for %s with schedule: %s", s.agent.Name(), s.spec)
	s.cron.Start()

	<-ctx.Done()
	log.Printf("Scheduler stopped for %s", s.agent.Name())
	s.cron.Stop()
	return ctx.Err()
}

// RunOnce executes a single run and records the outcome.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	startTime := time.Now()
	name := s.agent.Name()

	log.Printf("Starting %s run...", name)

	if err := s.agent.RunOnce(ctx); err != nil {
		duration := time.Since(startTime)
		s.monitor.RecordCriticalFailure(fmt.Errorf("%s failed: %w", name, err), duration)
		return fmt.Errorf("%s run failed: %w", name, err)
	}

	s.monitor.RecordSuccess(fmt.Sprintf("%s run finished", name), time.Since(startTime))
	return nil
}
