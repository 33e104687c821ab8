// Package maintenance runs periodic housekeeping against the store.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Optimizer refreshes database statistics.
type Optimizer interface {
	Optimize(ctx context.Context) error
}

// Scheduler runs Optimize on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	store   Optimizer
	log     logrus.FieldLogger
	timeout time.Duration
}

// NewScheduler registers the maintenance job under schedule, a standard
// five-field cron expression or a descriptor such as "@hourly".
func NewScheduler(schedule string, store Optimizer, log logrus.FieldLogger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		store:   store,
		log:     log,
		timeout: time.Minute,
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid maintenance schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins running the job in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce runs the maintenance job immediately.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.store.Optimize(ctx); err != nil {
		s.log.Errorf("Database maintenance failed: %v", err)
		return
	}
	s.log.Infof("Database maintenance finished in %s", time.Since(start))
}
