// Package ports defines the persistence contracts of the ordering domain.
// Adapters in internal/adapters/out implement them; use cases depend only on
// these interfaces.
package ports

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrOrderIDConflict is returned by OrderRepository.Add when the business
// order id is already taken. The transaction stays usable, so the caller may
// retry with a fresh id.
var ErrOrderIDConflict = errors.New("order id already exists")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists the order header and all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its line items. Returns an ObjectNotFoundError
	// for unknown ids and for rows holding an unrecognised status code.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// UpdateStatus writes t.To only if the stored version still equals
	// t.ExpectedVersion, and bumps the version. A lost race returns a
	// ConcurrentModificationError and changes nothing.
	UpdateStatus(ctx context.Context, t order.Transition) error

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
}
