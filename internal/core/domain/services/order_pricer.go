package services

import (
	"errors"
	"fmt"
	"sort"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// LineRequest is a requested (product, quantity) pair before pricing.
type LineRequest struct {
	ProductID int64
	Quantity  int
}

// SalesDelta is the amount to add to one product's sales counter.
type SalesDelta struct {
	ProductID int64
	Quantity  int
}

// OrderPricer snapshots catalog prices and names into line items.
//
// Business rules:
//   - every requested product must exist in the catalog
//   - delisted products cannot be ordered
//   - any bad line rejects the whole request
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	items, err := pricer.Price(lines, productsByID)
//	if err != nil {
//	    // nothing has been written yet
//	}
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price builds one line item per request, in request order. All line errors
// are joined so the caller sees every problem at once.
func (p OrderPricer) Price(lines []LineRequest, products map[int64]catalog.Product) ([]order.LineItem, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.LineItem, 0, len(lines))
	var joined error

	for idx, line := range lines {
		item, err := p.priceLine(line, products)
		if err != nil {
			joined = errors.Join(joined, fmt.Errorf("line %d: %w", idx, err))
			continue
		}
		items = append(items, item)
	}

	if joined != nil {
		return nil, joined
	}
	return items, nil
}

func (p OrderPricer) priceLine(line LineRequest, products map[int64]catalog.Product) (order.LineItem, error) {
	product, ok := products[line.ProductID]
	if !ok {
		return order.LineItem{}, errs.NewObjectNotFoundError("productId", line.ProductID)
	}
	if err := product.Validate(); err != nil {
		return order.LineItem{}, err
	}
	if err := product.EnsureOrderable(); err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(product.ID(), product.Name(), product.Price(), line.Quantity)
}

// SalesDeltas sums quantities per product and sorts by product id so that
// concurrent writers lock product rows in the same order.
func (p OrderPricer) SalesDeltas(items []order.LineItem) []SalesDelta {
	totals := make(map[int64]int, len(items))
	for _, item := range items {
		totals[item.ProductID()] += item.Quantity()
	}

	deltas := make([]SalesDelta, 0, len(totals))
	for productID, qty := range totals {
		deltas = append(deltas, SalesDelta{ProductID: productID, Quantity: qty})
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].ProductID < deltas[j].ProductID })

	return deltas
}
