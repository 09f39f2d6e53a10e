// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order and payment lifecycle.
//
// # Available Jobs
//
// 1. StalePaymentSweepJob - Runs every minute to report staged payments
// whose gateway confirmation never arrived, so operators can chase them up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stalePaymentsHandler, 30*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep only reads and logs; it never cancels a batch, because a late
// gateway confirmation must still reconcile normally. Query failures are
// logged and retried on the next tick.
package jobs
