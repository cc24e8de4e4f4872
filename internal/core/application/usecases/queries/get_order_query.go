package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery loads one order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery("ORDnUfojcH2M5j2j3Tk5A1mf2")
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	fmt.Printf("%s: %s, total %s\n", resp.OrderID, resp.StatusDescription, resp.Total)
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	OrderID           string
	CustomerID        string
	Address           string
	Phone             string
	Total             decimal.Decimal
	Status            order.Status
	StatusDescription string
	Version           int
	CreatedAt         time.Time
	Items             []OrderItemResponse
}

// OrderItemResponse is one line item snapshot.
type OrderItemResponse struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}
