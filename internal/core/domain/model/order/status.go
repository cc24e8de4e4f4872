package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The numeric value is the code
// stored in the orders and order_history tables.
//
// State transitions:
//
//	PendingPayment ──> Paid ──> Delivering ──> Completed
//	      │             │  │         │             │
//	      │             │  │         v             v
//	      v             │  └─────> Refunding <─────┘
//	  Cancelled <───────┘              │
//	                                   v
//	                               Refunded
//
// Cancelled and Refunded are final.
type Status int

const (
	PendingPayment Status = iota
	Paid
	Delivering
	Completed
	Cancelled
	Refunding
	Refunded
)

type statusInfo struct {
	name        string
	description string
}

func getStatusInfo() map[Status]statusInfo {
	return map[Status]statusInfo{
		PendingPayment: {name: "PendingPayment", description: "Pending payment"},
		Paid:           {name: "Paid", description: "Paid"},
		Delivering:     {name: "Delivering", description: "Delivering"},
		Completed:      {name: "Completed", description: "Completed"},
		Cancelled:      {name: "Cancelled", description: "Cancelled"},
		Refunding:      {name: "Refunding", description: "Refunding"},
		Refunded:       {name: "Refunded", description: "Refunded"},
	}
}

// getTransitions is the adjacency table. Every other rule in this file is
// derived from it.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingPayment: {Paid, Cancelled},
		Paid:           {Delivering, Cancelled, Refunding},
		Delivering:     {Completed, Refunding},
		Completed:      {Refunding},
		Refunding:      {Refunded},
		Cancelled:      {},
		Refunded:       {},
	}
}

// AllStatuses returns every known status in code order.
func AllStatuses() []Status {
	return []Status{PendingPayment, Paid, Delivering, Completed, Cancelled, Refunding, Refunded}
}

// FromCode resolves a stored status code.
func FromCode(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Code returns the persisted numeric code.
func (s Status) Code() int {
	return int(s)
}

// Validate reports whether s is one of the seven known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status code", int(s)))
	}
	return nil
}

// String returns the status name, or "Unknown" for unrecognised codes.
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.name
	}
	return "Unknown"
}

// Description returns the human readable label written into history entries.
func (s Status) Description() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.description
	}
	return "Unknown"
}

// DescriptionOf looks up a raw code, returning "Unknown" when it is not recognised.
func DescriptionOf(code int) string {
	return Status(code).Description()
}

// IsValidTransition is true for from == to and for every edge in the table.
// Unknown statuses never transition.
func IsValidTransition(from, to Status) bool {
	if from.Validate() != nil || to.Validate() != nil {
		return false
	}
	if from == to {
		return true
	}
	return from.hasEdgeTo(to)
}

func (s Status) hasEdgeTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// CanMoveTo is the stricter check used by the named operations: it requires a
// real edge, so a self-transition is rejected.
func (s Status) CanMoveTo(to Status) bool {
	return s != to && s.hasEdgeTo(to)
}

// IsCancellable holds when the table has an edge from s into Cancelled.
func (s Status) IsCancellable() bool {
	return s.hasEdgeTo(Cancelled)
}

// IsRefundable holds when the table has an edge from s into Refunding.
func (s Status) IsRefundable() bool {
	return s.hasEdgeTo(Refunding)
}

// IsFinal holds for known statuses with no outgoing edges.
func (s Status) IsFinal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// AvailableTransitions lists the statuses reachable in one step, in code order.
// The self-transition is not included.
func (s Status) AvailableTransitions() []Status {
	available := make([]Status, 0, len(getTransitions()[s]))
	for _, candidate := range AllStatuses() {
		if s.hasEdgeTo(candidate) {
			available = append(available, candidate)
		}
	}
	return available
}
