package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its items straight from the tables.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for unknown orders and for orders
// whose stored status code is not recognised.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp       GetOrderQueryResponse
		statusCode int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_id,
			address,
			phone,
			total,
			status,
			version,
			created_at
		FROM orders
		WHERE order_id = ?
	`, query.OrderID().String()).Row()
	if err := row.Err(); err != nil {
		return nil, errs.NewStorageError("get order", err)
	}

	err := row.Scan(
		&resp.OrderID,
		&resp.CustomerID,
		&resp.Address,
		&resp.Phone,
		&resp.Total,
		&statusCode,
		&resp.Version,
		&resp.CreatedAt,
	)
	if isNoRows(err) {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return nil, errs.NewStorageError("get order", err)
	}

	status, err := order.FromCode(statusCode)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID().String(), err)
	}
	resp.Status = status
	resp.StatusDescription = status.Description()
	resp.CreatedAt = resp.CreatedAt.UTC()

	items, err := h.items(ctx, resp.OrderID)
	if err != nil {
		return nil, err
	}
	resp.Items = items

	return &resp, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID string) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, errs.NewStorageError("get order items", err)
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.ProductID, &item.ProductName, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, errs.NewStorageError("get order items", err)
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("get order items", err)
	}

	return items, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
