// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// HistoryCleanupJob deletes order history entries older than the configured
// retention (HISTORY_RETENTION_DAYS, 180 by default). It runs on
// HISTORY_CLEANUP_SCHEDULE, "0 0 3 * * *" (03:00 every day) by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cleanupHandler, jobs.HistoryRetention{
//		Schedule:   "0 0 3 * * *",
//		DaysToKeep: 180,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Cleanup is best effort: a failed run is logged and the next tick tries
// again. Configuration errors are returned by StartAll.
package jobs
