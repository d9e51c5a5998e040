// Package jobs provides the scheduled background work of the marketplace.
//
// A single MaintenanceJob, built on github.com/robfig/cron/v3, runs at a
// configurable interval (daily by default) and performs two sweeps in order:
//
//  1. Grant expiry - deactivates active grants past their validity window.
//  2. Ranking recomputation - rescores every open listing so age decay keeps
//     reshuffling the feed.
//
// Expiry runs first so a listing whose owner just lost premium status is
// rescored without the boost in the same run. Both sweeps work per row and
// tolerate concurrent live traffic; per-item failures are counted, logged,
// and retried on the next run.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(expireHandler, recomputeHandler, interval, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
