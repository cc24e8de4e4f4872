package historyrepo

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/history"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

const newestFirst = "operated_at DESC"

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("append history", err)
	}
	return nil
}

func (r *GormHistoryRepository) ByOrder(ctx context.Context, orderID kernel.OrderID) ([]*history.Entry, error) {
	return r.find(ctx, "history by order", "order_id = ?", orderID.String())
}

func (r *GormHistoryRepository) ByOperator(ctx context.Context, operator string) ([]*history.Entry, error) {
	return r.find(ctx, "history by operator", "operator = ?", operator)
}

func (r *GormHistoryRepository) ByTimeRange(ctx context.Context, start, end time.Time) ([]*history.Entry, error) {
	return r.find(ctx, "history by time range", "operated_at >= ? AND operated_at < ?", start.UTC(), end.UTC())
}

func (r *GormHistoryRepository) Latest(ctx context.Context, orderID kernel.OrderID) (*history.Entry, error) {
	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.String()).
		Order(newestFirst).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("latest history", err)
	}
	if len(dtos) == 0 {
		return nil, nil
	}
	return toDomain(dtos[0])
}

func (r *GormHistoryRepository) HasStatus(ctx context.Context, orderID kernel.OrderID, status order.Status) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&HistoryDTO{}).
		Where("order_id = ? AND to_status = ?", orderID.String(), status.Code()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStorageError("history has status", err)
	}
	return count > 0, nil
}

func (r *GormHistoryRepository) Count(ctx context.Context, orderID kernel.OrderID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&HistoryDTO{}).
		Where("order_id = ?", orderID.String()).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewStorageError("count history", err)
	}
	return count, nil
}

func (r *GormHistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("operated_at < ?", cutoff.UTC()).
		Delete(&HistoryDTO{})
	if result.Error != nil {
		return 0, errs.NewStorageError("delete old history", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormHistoryRepository) find(ctx context.Context, op, query string, args ...any) ([]*history.Entry, error) {
	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order(newestFirst).Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError(op, err)
	}
	return toDomainList(dtos)
}
