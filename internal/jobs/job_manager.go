package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePaymentSweepJob *StalePaymentSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stalePaymentsHandler queries.GetStalePaymentsQueryHandler,
	stalePaymentAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePaymentSweepJob: NewStalePaymentSweepJob(stalePaymentsHandler, stalePaymentAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePaymentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale payment sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePaymentSweepJob.Stop()
}
