package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/history"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// TransitionOrderCommandHandler is the generic entry point of the state
// machine. The status update and the history append share one transaction.
type TransitionOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewTransitionOrderCommandHandler(uowFactory TransitionUoWFactory, logger *slog.Logger) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "transition-order-handler"),
		now:        time.Now,
	}
}

// Handle returns the order as it is after the transition.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return runTransition(ctx, h.uowFactory, h.logger, h.now, cmd.OrderID(),
		func(aggregate *order.Order) (order.Transition, error) {
			return aggregate.TransitionTo(cmd.Target(), cmd.Reason(), cmd.Operator(), cmd.Remarks())
		})
}

type transitionFunc func(aggregate *order.Order) (order.Transition, error)

// runTransition loads the order, applies fn and persists the result. Any
// error leaves both the order row and its history untouched.
func runTransition(
	ctx context.Context,
	uowFactory TransitionUoWFactory,
	logger *slog.Logger,
	now func() time.Time,
	orderID kernel.OrderID,
	fn transitionFunc,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	aggregate, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	t, err := fn(aggregate)
	if err != nil {
		logger.InfoContext(ctx, "transition rejected", "orderId", orderID.String(), "error", err)
		return nil, err
	}

	entry, err := history.NewEntry(t, now())
	if err != nil {
		return nil, err
	}

	if err = orders.UpdateStatus(ctx, t); err != nil {
		if errors.Is(err, errs.ErrConcurrentModification) {
			logger.WarnContext(ctx, "transition lost a concurrent update",
				"orderId", t.OrderID.String(), "expectedVersion", t.ExpectedVersion)
		}
		return nil, err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "order status changed",
		"orderId", t.OrderID.String(),
		"from", t.From.String(),
		"to", t.To.String(),
		"operator", t.Operator,
		"reason", t.Reason,
	)

	return aggregate, nil
}
