package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// OrderActionCommandHandler runs the named operations (pay, cancel, refund,
// ...). Each one checks its own precondition and then shares the persistence
// path of TransitionOrderCommandHandler.
type OrderActionCommandHandler struct {
	uowFactory TransitionUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewOrderActionCommandHandler(uowFactory TransitionUoWFactory, logger *slog.Logger) OrderActionCommandHandler {
	return OrderActionCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "order-action-handler"),
		now:        time.Now,
	}
}

func (h *OrderActionCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return runTransition(ctx, h.uowFactory, h.logger, h.now, cmd.OrderID(),
		func(aggregate *order.Order) (order.Transition, error) {
			return cmd.Action().apply(aggregate, cmd.Reason(), cmd.Operator())
		})
}
