package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var (
	ErrHasReachedStatusQueryIsNotConstructed = errors.New(
		"HasReachedStatusQuery must be created via NewHasReachedStatusQuery constructor",
	)
)

// HasReachedStatusQuery asks whether an order was ever moved into a status.
// PendingPayment is never recorded, since creation writes no history.
type HasReachedStatusQuery struct {
	orderID kernel.OrderID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewHasReachedStatusQuery(orderID string, statusCode int) (HasReachedStatusQuery, error) {
	id, idErr := kernel.OrderIDFromString(orderID)
	status, statusErr := order.FromCode(statusCode)
	if err := errors.Join(idErr, statusErr); err != nil {
		return HasReachedStatusQuery{}, err
	}
	return HasReachedStatusQuery{orderID: id, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q HasReachedStatusQuery) Validate() error {
	return q.guard.Validate(ErrHasReachedStatusQueryIsNotConstructed)
}

func (q HasReachedStatusQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q HasReachedStatusQuery) Status() order.Status {
	return q.status
}

type HasReachedStatusQueryHandler struct {
	historyRepo ports.HistoryRepository
}

func NewHasReachedStatusQueryHandler(historyRepo ports.HistoryRepository) HasReachedStatusQueryHandler {
	return HasReachedStatusQueryHandler{historyRepo: historyRepo}
}

func (h HasReachedStatusQueryHandler) Handle(ctx context.Context, query HasReachedStatusQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}
	return h.historyRepo.HasStatus(ctx, query.OrderID(), query.Status())
}
