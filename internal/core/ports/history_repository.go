package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/history"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// HistoryRepository is the append-only store of status changes. Every list
// method returns entries most recent first and never returns nil.
type HistoryRepository interface {
	Append(ctx context.Context, entry *history.Entry) error
	ByOrder(ctx context.Context, orderID kernel.OrderID) ([]*history.Entry, error)
	ByOperator(ctx context.Context, operator string) ([]*history.Entry, error)

	// ByTimeRange matches start <= operated_at < end.
	ByTimeRange(ctx context.Context, start, end time.Time) ([]*history.Entry, error)

	// Latest returns nil without error when the order has no history.
	Latest(ctx context.Context, orderID kernel.OrderID) (*history.Entry, error)

	HasStatus(ctx context.Context, orderID kernel.OrderID, status order.Status) (bool, error)
	Count(ctx context.Context, orderID kernel.OrderID) (int64, error)

	// DeleteOlderThan removes entries with operated_at < cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
