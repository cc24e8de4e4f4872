package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetHistorySummaryQueryIsNotConstructed = errors.New(
		"GetHistorySummaryQuery must be created via NewGetHistorySummaryQuery constructor",
	)
)

// GetHistorySummaryQuery returns the number of changes and the latest one.
type GetHistorySummaryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetHistorySummaryQuery(orderID string) (GetHistorySummaryQuery, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return GetHistorySummaryQuery{}, err
	}
	return GetHistorySummaryQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetHistorySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistorySummaryQueryIsNotConstructed)
}

func (q GetHistorySummaryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetHistorySummaryQueryResponse has a nil Latest when Count is 0.
type GetHistorySummaryQueryResponse struct {
	OrderID string
	Count   int64
	Latest  *HistoryEntryResponse
}

type GetHistorySummaryQueryHandler struct {
	historyRepo ports.HistoryRepository
}

func NewGetHistorySummaryQueryHandler(historyRepo ports.HistoryRepository) GetHistorySummaryQueryHandler {
	return GetHistorySummaryQueryHandler{historyRepo: historyRepo}
}

func (h GetHistorySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetHistorySummaryQuery,
) (*GetHistorySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	count, err := h.historyRepo.Count(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	resp := &GetHistorySummaryQueryResponse{OrderID: query.OrderID().String(), Count: count}
	if count == 0 {
		return resp, nil
	}

	latest, err := h.historyRepo.Latest(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if latest != nil {
		entry := toHistoryEntryResponse(latest)
		resp.Latest = &entry
	}

	return resp, nil
}
