package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetAvailableTransitionsQueryIsNotConstructed = errors.New(
		"GetAvailableTransitionsQuery must be created via NewGetAvailableTransitionsQuery constructor",
	)
)

// GetAvailableTransitionsQuery reports where an order can move next.
type GetAvailableTransitionsQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetAvailableTransitionsQuery(orderID string) (GetAvailableTransitionsQuery, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return GetAvailableTransitionsQuery{}, err
	}
	return GetAvailableTransitionsQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailableTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTransitionsQueryIsNotConstructed)
}

func (q GetAvailableTransitionsQuery) OrderID() kernel.OrderID {
	return q.orderID
}

type GetAvailableTransitionsQueryResponse struct {
	OrderID     string
	Current     order.Status
	Available   []order.Status
	IsFinal     bool
	Cancellable bool
	Refundable  bool
}
