package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetHistoryByTimeRangeQueryIsNotConstructed = errors.New(
		"GetHistoryByTimeRangeQuery must be created via NewGetHistoryByTimeRangeQuery constructor",
	)
)

// GetHistoryByTimeRangeQuery lists changes with start <= operated_at < end.
type GetHistoryByTimeRangeQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

func NewGetHistoryByTimeRangeQuery(start, end time.Time) (GetHistoryByTimeRangeQuery, error) {
	if start.IsZero() || end.IsZero() {
		return GetHistoryByTimeRangeQuery{}, errs.NewValueIsRequiredError("start and end")
	}
	if !start.Before(end) {
		return GetHistoryByTimeRangeQuery{}, errs.NewValueIsInvalidErrorWithCause("start",
			fmt.Errorf("%s is not before %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}
	return GetHistoryByTimeRangeQuery{start: start.UTC(), end: end.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetHistoryByTimeRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryByTimeRangeQueryIsNotConstructed)
}

func (q GetHistoryByTimeRangeQuery) Start() time.Time {
	return q.start
}

func (q GetHistoryByTimeRangeQuery) End() time.Time {
	return q.end
}

type GetHistoryByTimeRangeQueryHandler struct {
	historyRepo ports.HistoryRepository
}

func NewGetHistoryByTimeRangeQueryHandler(historyRepo ports.HistoryRepository) GetHistoryByTimeRangeQueryHandler {
	return GetHistoryByTimeRangeQueryHandler{historyRepo: historyRepo}
}

func (h GetHistoryByTimeRangeQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryByTimeRangeQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.historyRepo.ByTimeRange(ctx, query.Start(), query.End())
	if err != nil {
		return nil, err
	}

	return toHistoryEntryResponses(entries), nil
}
