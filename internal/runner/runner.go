package runner

import (
	"context"
	"log/slog"
	"time"

	"dailycard/internal/domain"
)

// Job defines the interface for a single daily run.
type Job interface {
	Run(ctx context.Context) (*domain.RunReport, error)
}

// Runner executes a Job exactly once under a deadline.
type Runner struct {
	job     Job
	timeout time.Duration
	logger  *slog.Logger
}

func New(job Job, timeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		job:     job,
		timeout: timeout,
		logger:  logger,
	}
}

func (r *Runner) Run(ctx context.Context) (*domain.RunReport, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Info("run started", "timeout", r.timeout)

	report, err := r.job.Run(ctx)
	if err != nil {
		r.logger.Error("run failed", "error", err)
		return report, err
	}

	return report, nil
}
