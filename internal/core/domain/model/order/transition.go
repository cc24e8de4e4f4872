package order

import "foodorder/internal/core/domain/model/kernel"

// DefaultOperator is recorded when a transition is requested without an operator.
const DefaultOperator = "system"

// Transition describes one accepted status change. It carries the version the
// order had when it was loaded so the repository can detect a concurrent writer.
type Transition struct {
	OrderID         kernel.OrderID
	From            Status
	To              Status
	Reason          string
	Operator        string
	Remarks         string
	ExpectedVersion int
}

// IsSelf is true when the order stays in its current status.
func (t Transition) IsSelf() bool {
	return t.From == t.To
}
