package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// RetryPeriod is the fixed delay between two poll cycles.
const RetryPeriod = 600 * time.Second

// PollScheduler paces the poll loop on a constant-delay cron schedule.
type PollScheduler struct {
	schedule cron.ConstantDelaySchedule
}

func NewPollScheduler(period time.Duration) *PollScheduler {
	return &PollScheduler{schedule: cron.Every(period)}
}

// Period is the delay after rounding to whole seconds, as cron does.
func (s *PollScheduler) Period() time.Duration {
	return s.schedule.Delay
}

// Next returns the activation that follows from.
func (s *PollScheduler) Next(from time.Time) time.Time {
	return s.schedule.Next(from)
}

// Wait blocks until the next activation or until ctx is done.
func (s *PollScheduler) Wait(ctx context.Context) error {
	timer := time.NewTimer(time.Until(s.Next(time.Now())))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
