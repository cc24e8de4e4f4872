package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	insertSavepoint    = "order_insert"
	uniqueViolation    = "23505"
	orderIDUniqueIndex = "idx_orders_order_id"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the header and its line items. Inside a transaction the insert
// runs under a savepoint, so a duplicate order id leaves the transaction
// usable and is reported as ports.ErrOrderIDConflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	guarded := inTransaction(db)
	if guarded {
		if err := db.SavePoint(insertSavepoint).Error; err != nil {
			return errs.NewStorageError("savepoint order insert", err)
		}
	}

	err := db.Create(&dto).Error
	if err == nil {
		return nil
	}

	if guarded {
		if rbErr := db.RollbackTo(insertSavepoint).Error; rbErr != nil {
			return errs.NewStorageError("rollback order insert", errors.Join(err, rbErr))
		}
	}

	if isOrderIDConflict(err) {
		return fmt.Errorf("%w: %s", ports.ErrOrderIDConflict, aggregate.ID())
	}
	return errs.NewStorageError("insert order", err)
}

// Get loads the order and its items, items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "order_id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-swap on the version column.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, t order.Transition) error {
	if err := t.OrderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ? AND version = ?", t.OrderID.String(), t.ExpectedVersion).
		Updates(map[string]any{
			"status":  t.To.Code(),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errs.NewStorageError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("order_id = ?", t.OrderID.String()).Count(&count).Error; err != nil {
			return errs.NewStorageError("update order status", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", t.OrderID.String())
		}
		return errs.NewConcurrentModificationError("orderId", t.OrderID.String(), t.ExpectedVersion)
	}

	return nil
}

// ListByCustomer returns newest orders first.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("list customer orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func inTransaction(db *gorm.DB) bool {
	committer, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok && committer != nil
}

func isOrderIDConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == orderIDUniqueIndex
}
