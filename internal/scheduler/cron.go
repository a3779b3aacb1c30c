// Package scheduler repeats the scrape on a cron schedule.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Job is one execution of the pipeline.
type Job func(ctx context.Context) error

type CronRunner struct {
	scheduler *gocron.Scheduler
	expr      string
	logger    logrus.FieldLogger
}

func NewCronRunner(expr string, logger logrus.FieldLogger) *CronRunner {
	return &CronRunner{
		scheduler: gocron.NewScheduler(time.Local),
		expr:      expr,
		logger:    logger,
	}
}

// Run schedules job and blocks until ctx is done. A run still in progress when
// the next tick fires is not overlapped.
func (r *CronRunner) Run(ctx context.Context, job Job) error {
	_, err := r.scheduler.Cron(r.expr).SingletonMode().Do(func() {
		r.logger.WithField("cron", r.expr).Info("scheduled run starting")
		if err := job(ctx); err != nil {
			r.logger.WithError(err).Error("scheduled run failed")
		}
	})
	if err != nil {
		return errors.Wrapf(err, "invalid cron expression %q", r.expr)
	}

	r.scheduler.StartAsync()
	r.logger.WithField("cron", r.expr).Info("scheduler started")

	<-ctx.Done()
	r.scheduler.Stop()
	r.logger.Info("scheduler stopped")
	return nil
}
