package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetAvailableTransitionsQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableTransitionsQueryHandler(db *gorm.DB) GetAvailableTransitionsQueryHandler {
	return GetAvailableTransitionsQueryHandler{db: db}
}

func (h GetAvailableTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTransitionsQuery,
) (*GetAvailableTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var statusCode int
	err := h.db.WithContext(ctx).Raw(`SELECT status FROM orders WHERE order_id = ?`,
		query.OrderID().String()).Row().Scan(&statusCode)
	if isNoRows(err) {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return nil, errs.NewStorageError("get order status", err)
	}

	current, err := order.FromCode(statusCode)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID().String(), err)
	}

	return &GetAvailableTransitionsQueryResponse{
		OrderID:     query.OrderID().String(),
		Current:     current,
		Available:   current.AvailableTransitions(),
		IsFinal:     current.IsFinal(),
		Cancellable: current.IsCancellable(),
		Refundable:  current.IsRefundable(),
	}, nil
}
