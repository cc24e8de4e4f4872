package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery lists an order's history, most recent first.
type GetOrderHistoryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID string) (GetOrderHistoryQuery, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

type GetOrderHistoryQueryHandler struct {
	historyRepo ports.HistoryRepository
}

func NewGetOrderHistoryQueryHandler(historyRepo ports.HistoryRepository) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{historyRepo: historyRepo}
}

// Handle returns an empty slice for orders that never changed status.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.historyRepo.ByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return toHistoryEntryResponses(entries), nil
}
