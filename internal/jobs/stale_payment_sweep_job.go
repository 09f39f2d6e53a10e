package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStalePaymentAge is how long a checkout batch may wait for its
// gateway confirmation before the sweep reports it.
const DefaultStalePaymentAge = 30 * time.Minute

// StalePaymentSweepJob periodically lists staged payments whose gateway
// confirmation never arrived and logs them for manual review. The sweep
// never mutates state: a late confirmation must still reconcile normally.
type StalePaymentSweepJob struct {
	handler   queries.GetStalePaymentsQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePaymentSweepJob creates a sweep job reporting payments staged
// longer than olderThan ago. A non-positive olderThan falls back to
// DefaultStalePaymentAge.
func NewStalePaymentSweepJob(
	handler queries.GetStalePaymentsQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StalePaymentSweepJob {
	if olderThan <= 0 {
		olderThan = DefaultStalePaymentAge
	}

	return &StalePaymentSweepJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_payment_sweep_job"),
	}
}

// Start begins the sweep, running once a minute.
func (j *StalePaymentSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalePaymentsQuery(j.olderThan)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale payment sweep misconfigured", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale payment sweep failed", "error", handleErr)
			return
		}

		for _, p := range stale {
			j.logger.WarnContext(ctx, "Staged payment awaiting confirmation",
				"reference", p.Reference,
				"amount", p.Amount,
				"stagedAt", p.StagedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale payment sweep started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *StalePaymentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale payment sweep stopped")
}
