package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// HistoryCleaner deletes history entries older than the retention window.
type HistoryCleaner interface {
	Handle(ctx context.Context, cmd commands.CleanupHistoryCommand) (int64, error)
}

// HistoryCleanupJob enforces history retention on a cron schedule.
// Failures are logged and retried on the next tick; orders are never touched.
type HistoryCleanupJob struct {
	handler    HistoryCleaner
	schedule   string
	daysToKeep int
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewHistoryCleanupJob takes a six-field cron expression (seconds first).
func NewHistoryCleanupJob(handler HistoryCleaner, schedule string, daysToKeep int, logger *slog.Logger) *HistoryCleanupJob {
	return &HistoryCleanupJob{
		handler:    handler,
		schedule:   schedule,
		daysToKeep: daysToKeep,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "history_cleanup_job"),
	}
}

// Start registers the cleanup and starts the scheduler. An invalid schedule
// or retention is reported here rather than on the first tick.
func (j *HistoryCleanupJob) Start() error {
	if _, err := commands.NewCleanupHistoryCommand(j.daysToKeep); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "History cleanup job started",
		"schedule", j.schedule, "days_to_keep", j.daysToKeep)
	return nil
}

// RunOnce performs a single cleanup and returns the number of deleted entries.
func (j *HistoryCleanupJob) RunOnce(ctx context.Context) int64 {
	cmd, err := commands.NewCleanupHistoryCommand(j.daysToKeep)
	if err != nil {
		j.logger.ErrorContext(ctx, "History cleanup job misconfigured", "error", err)
		return 0
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "History cleanup job failed", "error", err)
		return 0
	}

	j.logger.InfoContext(ctx, "History cleanup finished", "deleted", deleted, "days_to_keep", j.daysToKeep)
	return deleted
}

// Stop stops the scheduler and waits for a running cleanup to finish.
func (j *HistoryCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "History cleanup job stopped")
}
