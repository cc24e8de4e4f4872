// Package commands contains the operations that change order state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load, mutate, persist, commit.
package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// Unit of work views used by the command handlers. Each handler depends only
// on the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	CatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
		CustomerDirectory() ports.CustomerDirectory
	}

	// CreateOrderUoW spans the order, product and customer tables.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
	}

	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// TransitionUoW updates an order and appends its history entry atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().UpdateStatus(ctx, t)
	//   err = uow.HistoryRepository().Append(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// HistoryUoW is used by maintenance commands on the history table.
	HistoryUoW interface {
		TxManager
		HistoryRepoFactory
	}

	HistoryUoWFactory interface {
		Create() HistoryUoW
	}

	// OrderIDGenerator produces fresh business order ids.
	OrderIDGenerator interface {
		Generate() (kernel.OrderID, error)
	}
)
