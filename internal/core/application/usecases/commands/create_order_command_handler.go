package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// MaxOrderIDAttempts bounds how many fresh ids are tried when an insert hits
// an existing business order id.
const MaxOrderIDAttempts = 3

// CreateOrderCommandHandler places an order. Customer and product checks run
// before any write; the header, line items and sales increments then commit
// together.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.NewOrderIDGenerator())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Status() == order.PendingPayment
type CreateOrderCommandHandler struct {
	uowFactory  CreateOrderUoWFactory
	idGenerator OrderIDGenerator
	pricer      services.OrderPricer
	now         func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	idGenerator OrderIDGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
		pricer:      services.NewOrderPricer(),
		now:         time.Now,
	}
}

// Handle returns the persisted order. It writes no history entry.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.CustomerDirectory().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customerId", cmd.CustomerID())
	}

	productCatalog := uow.ProductCatalog()
	products, err := productCatalog.LookupMany(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	items, err := h.pricer.Price(cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	created, err := h.insert(ctx, uow.OrderRepository(), cmd, items)
	if err != nil {
		return nil, err
	}

	for _, delta := range h.pricer.SalesDeltas(items) {
		if err = productCatalog.IncrementSales(ctx, delta.ProductID, delta.Quantity); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (h *CreateOrderCommandHandler) insert(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd CreateOrderCommand,
	items []order.LineItem,
) (*order.Order, error) {
	createdAt := h.now()

	for range MaxOrderIDAttempts {
		id, err := h.idGenerator.Generate()
		if err != nil {
			return nil, err
		}

		aggregate, err := order.NewOrder(id, cmd.CustomerID(), cmd.Address(), cmd.Phone(), items, createdAt)
		if err != nil {
			return nil, err
		}

		err = repo.Add(ctx, aggregate)
		if errors.Is(err, ports.ErrOrderIDConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return aggregate, nil
	}

	return nil, errs.NewStorageError("insert order",
		fmt.Errorf("%w after %d attempts", ports.ErrOrderIDConflict, MaxOrderIDAttempts))
}
