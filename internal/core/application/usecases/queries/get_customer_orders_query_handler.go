package queries

import (
	"context"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns an empty slice for customers without orders. Status codes
// this build does not know are reported as order.Status values whose
// description is "Unknown" rather than failing the whole list.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			total,
			status,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list customer orders", err)
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp       GetCustomerOrdersQueryResponse
			statusCode int
		)
		if err = rows.Scan(&resp.OrderID, &resp.Total, &statusCode, &resp.CreatedAt); err != nil {
			return nil, errs.NewStorageError("list customer orders", err)
		}
		resp.Status = statusFromCode(statusCode)
		resp.StatusDescription = resp.Status.Description()
		resp.CreatedAt = resp.CreatedAt.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list customer orders", err)
	}

	return orders, nil
}
