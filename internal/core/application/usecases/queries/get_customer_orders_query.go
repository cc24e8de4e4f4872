package queries

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery lists one customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID string) (GetCustomerOrdersQuery, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerId")
	}
	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() string {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is an order header without line items.
type GetCustomerOrdersQueryResponse struct {
	OrderID           string
	Total             decimal.Decimal
	Status            order.Status
	StatusDescription string
	CreatedAt         time.Time
}
