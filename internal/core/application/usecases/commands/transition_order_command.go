package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand asks for a move to any status the table allows,
// including the current one.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	target   order.Status
	reason   string
	operator string
	remarks  string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand resolves the raw order id and status code.
func NewTransitionOrderCommand(orderID string, targetCode int, reason, operator, remarks string) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		reason:   reason,
		operator: operator,
		remarks:  remarks,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(targetCode),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

func (c TransitionOrderCommand) Operator() string {
	return c.operator
}

func (c TransitionOrderCommand) Remarks() string {
	return c.remarks
}

func (c *TransitionOrderCommand) setOrderID(orderID string) error {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *TransitionOrderCommand) setTarget(code int) error {
	status, err := order.FromCode(code)
	if err != nil {
		return err
	}
	c.target = status
	return nil
}
