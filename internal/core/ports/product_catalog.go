package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
)

// ProductCatalog is the view of the product table needed by order creation.
type ProductCatalog interface {
	// Lookup returns an ObjectNotFoundError for unknown products.
	Lookup(ctx context.Context, productID int64) (catalog.Product, error)

	// LookupMany returns the products that exist, keyed by id. Missing ids
	// are simply absent from the map.
	LookupMany(ctx context.Context, productIDs []int64) (map[int64]catalog.Product, error)

	// IncrementSales adds delta to the sales counter in a single statement.
	IncrementSales(ctx context.Context, productID int64, delta int) error
}

// CustomerDirectory answers whether a customer account exists.
type CustomerDirectory interface {
	Exists(ctx context.Context, customerID string) (bool, error)
}
