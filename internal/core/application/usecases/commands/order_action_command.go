package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrOrderActionCommandIsNotConstructed = errors.New(
		"OrderActionCommand must be created via NewOrderActionCommand constructor",
	)
)

// Action is one of the named lifecycle operations.
type Action int

const (
	ActionPay Action = iota + 1
	ActionStartDelivery
	ActionConfirmDelivery
	ActionCancel
	ActionRequestRefund
	ActionCompleteRefund
)

func getActionNames() map[Action]string {
	return map[Action]string{
		ActionPay:             "pay",
		ActionStartDelivery:   "start-delivery",
		ActionConfirmDelivery: "confirm-delivery",
		ActionCancel:          "cancel",
		ActionRequestRefund:   "refund",
		ActionCompleteRefund:  "complete-refund",
	}
}

// ParseAction maps a route segment such as "start-delivery" to an Action.
func ParseAction(name string) (Action, error) {
	for action, actionName := range getActionNames() {
		if actionName == name {
			return action, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", name))
}

func (a Action) String() string {
	if name, ok := getActionNames()[a]; ok {
		return name
	}
	return "unknown"
}

// apply runs the matching guarded operation on the aggregate.
func (a Action) apply(aggregate *order.Order, reason, operator string) (order.Transition, error) {
	switch a {
	case ActionPay:
		return aggregate.Pay(operator)
	case ActionStartDelivery:
		return aggregate.StartDelivery(operator)
	case ActionConfirmDelivery:
		return aggregate.ConfirmDelivery(operator)
	case ActionCancel:
		return aggregate.Cancel(reason, operator)
	case ActionRequestRefund:
		return aggregate.RequestRefund(reason, operator)
	case ActionCompleteRefund:
		return aggregate.CompleteRefund(reason, operator)
	default:
		return order.Transition{}, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a known action", int(a)))
	}
}

// OrderActionCommand requests one named operation. Reason is ignored by
// Pay, StartDelivery and ConfirmDelivery, which record fixed reasons.
type OrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	action   Action
	reason   string
	operator string

	guard guard.ConstructorGuard
}

func NewOrderActionCommand(orderID string, action Action, reason, operator string) (OrderActionCommand, error) {
	cmd := OrderActionCommand{
		reason:   reason,
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return OrderActionCommand{}, err
	}

	return cmd, nil
}

func (c OrderActionCommand) Validate() error {
	return c.guard.Validate(ErrOrderActionCommandIsNotConstructed)
}

func (c OrderActionCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c OrderActionCommand) Action() Action {
	return c.action
}

func (c OrderActionCommand) Reason() string {
	return c.reason
}

func (c OrderActionCommand) Operator() string {
	return c.operator
}

func (c *OrderActionCommand) setOrderID(orderID string) error {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *OrderActionCommand) setAction(action Action) error {
	if _, ok := getActionNames()[action]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a known action", int(action)))
	}
	c.action = action
	return nil
}
