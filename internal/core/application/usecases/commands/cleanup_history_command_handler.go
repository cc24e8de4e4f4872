package commands

import (
	"context"
	"time"
)

// CleanupHistoryCommandHandler deletes old history rows. It never touches
// the orders table.
type CleanupHistoryCommandHandler struct {
	uowFactory HistoryUoWFactory
	now        func() time.Time
}

func NewCleanupHistoryCommandHandler(uowFactory HistoryUoWFactory) CleanupHistoryCommandHandler {
	return CleanupHistoryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the number of deleted entries.
func (h *CleanupHistoryCommandHandler) Handle(ctx context.Context, cmd CleanupHistoryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().UTC().AddDate(0, 0, -cmd.DaysToKeep())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.HistoryRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
