package jobs

import (
	"context"
	"os"
	"strconv"
	"time"

	"price-validity-service/internal/usecase"

	"github.com/sirupsen/logrus"
)

const defaultSweepInterval = 15 * time.Minute

// StatusSweepJob runs the automatic status sweep on a schedule. The
// sweep itself is idempotent and every write is conditional, so the job
// is safe to run alongside manual sweep triggers and in multiple pods.
type StatusSweepJob struct {
	lifecycle usecase.ILifecycleUseCase
	logger    *logrus.Logger
	interval  time.Duration
	stopCh    chan struct{}
}

// NewStatusSweepJob reads SWEEP_INTERVAL_MINUTES (default 15).
func NewStatusSweepJob(lifecycle usecase.ILifecycleUseCase, logger *logrus.Logger) *StatusSweepJob {
	interval := defaultSweepInterval
	if v := os.Getenv("SWEEP_INTERVAL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			interval = time.Duration(minutes) * time.Minute
		}
	}

	return &StatusSweepJob{
		lifecycle: lifecycle,
		logger:    logger,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start blocks, running the sweep immediately and then on every tick
// until Stop is called or the context is cancelled.
func (j *StatusSweepJob) Start(ctx context.Context) {
	j.logger.WithField("interval", j.interval.String()).Info("status sweep job started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.runSweep(ctx)

	for {
		select {
		case <-ticker.C:
			j.runSweep(ctx)
		case <-j.stopCh:
			j.logger.Info("status sweep job stopped")
			return
		case <-ctx.Done():
			j.logger.Info("status sweep job context cancelled")
			return
		}
	}
}

// Stop signals the job to stop.
func (j *StatusSweepJob) Stop() {
	close(j.stopCh)
}

func (j *StatusSweepJob) runSweep(ctx context.Context) {
	result, err := j.lifecycle.CheckAndUpdateAutomaticStatuses(ctx)
	if err != nil {
		j.logger.WithError(err).Error("automatic status sweep failed")
		return
	}

	if result.UpdatedCount == 0 {
		j.logger.WithField("checked", result.CheckedCount).Debug("automatic status sweep: nothing due")
		return
	}

	j.logger.WithFields(logrus.Fields{
		"checked": result.CheckedCount,
		"updated": result.UpdatedCount,
	}).Info("automatic status sweep applied transitions")
}
