package jobs

import (
	"fmt"
	"log/slog"
)

// HistoryRetention configures the history cleanup job.
type HistoryRetention struct {
	Schedule   string
	DaysToKeep int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	historyCleanupJob *HistoryCleanupJob
}

func NewJobManager(cleaner HistoryCleaner, retention HistoryRetention, logger *slog.Logger) *JobManager {
	return &JobManager{
		historyCleanupJob: NewHistoryCleanupJob(cleaner, retention.Schedule, retention.DaysToKeep, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.historyCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start history cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.historyCleanupJob.Stop()
}
