package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderActionCommandHandler_Handle_RefundWhileDelivering(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOrderActionCommand(testOrderID, commands.ActionRequestRefund, "food arrived cold", "alice")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	histories := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, cmd.OrderID()).Return(storedOrder(t, order.Delivering, 3), nil).Once(),
		orders.On("UpdateStatus", mock.Anything, transitionMatching(order.Delivering, order.Refunding, 3)).Return(nil).Once(),
		uow.On("HistoryRepository").Return(histories).Once(),
		histories.On("Append", mock.Anything, entryMatching(order.Delivering, order.Refunding, "food arrived cold")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOrderActionCommandHandler(factory, discardLogger())
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Refunding, updated.Status())
	histories.AssertNumberOfCalls(t, "Append", 1)
	uow.AssertExpectations(t)
}

func TestOrderActionCommandHandler_Handle_PayUsesFixedReason(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOrderActionCommand(testOrderID, commands.ActionPay, "ignored", "")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	histories := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, cmd.OrderID()).Return(storedOrder(t, order.PendingPayment, 0), nil).Once(),
		orders.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(tr order.Transition) bool {
			return tr.Operator == order.DefaultOperator && tr.Reason == order.ReasonPaymentCompleted
		})).Return(nil).Once(),
		uow.On("HistoryRepository").Return(histories).Once(),
		histories.On("Append", mock.Anything, entryMatching(order.PendingPayment, order.Paid, order.ReasonPaymentCompleted)).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOrderActionCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	histories.AssertExpectations(t)
}

func TestOrderActionCommandHandler_Handle_CompleteRefundOnlyFromRefunding(t *testing.T) {
	for _, s := range order.AllStatuses() {
		if s == order.Refunding {
			continue
		}
		t.Run(s.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewOrderActionCommand(testOrderID, commands.ActionCompleteRefund, "done", "support")
			require.NoError(t, err)

			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("Get", mock.Anything, cmd.OrderID()).Return(storedOrder(t, s, 1), nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockTransitionUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewOrderActionCommandHandler(factory, discardLogger())
			_, err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "HistoryRepository")
		})
	}
}

func TestOrderActionCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockTransitionUoWFactory)
	h := commands.NewOrderActionCommandHandler(factory, discardLogger())

	_, err := h.Handle(t.Context(), commands.OrderActionCommand{})

	require.ErrorIs(t, err, commands.ErrOrderActionCommandIsNotConstructed)
}
