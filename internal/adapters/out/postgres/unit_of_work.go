// Package postgres wires the GORM repositories into a Unit of Work and owns
// the connection and schema setup.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// All repositories share the transaction
//	if err := uow.OrderRepository().UpdateStatus(ctx, t); err != nil {
//	    return err
//	}
//	if err := uow.HistoryRepository().Append(ctx, entry); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds at most one transaction and must not be
// shared between goroutines.
package postgres

import (
	"context"

	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/historyrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out a fresh UnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the order,
// history, product and customer repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin is a no-op when a transaction is already open.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageError("begin transaction", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewStorageError("commit transaction", err)
	}
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which is the normal case for the deferred rollback after a commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductCatalog() ports.ProductCatalog {
	return catalogrepo.NewGormProductCatalog(uow.conn())
}

func (uow *GormUnitOfWork) CustomerDirectory() ports.CustomerDirectory {
	return customerrepo.NewGormCustomerDirectory(uow.conn())
}

// conn falls back to the plain pool outside a transaction.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
