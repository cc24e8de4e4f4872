package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	ReasonPaymentCompleted  = "payment completed"
	ReasonDeliveryStarted   = "delivery started"
	ReasonDeliveryConfirmed = "delivery confirmed by customer"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the ordering domain. It owns the header
// fields, the frozen line items and the lifecycle status.
//
// Invariants:
//   - the total equals the sum of line item subtotals and is positive
//   - the total is computed once, at creation, and never recomputed
//   - status changes go through TransitionTo or one of the named operations
//   - version increases by one with every accepted transition
type Order struct {
	id         kernel.OrderID
	customerID string
	address    string
	phone      string
	items      []LineItem
	total      decimal.Decimal
	status     Status
	version    int
	createdAt  time.Time

	isConstructed bool
}

// NewOrder builds a fresh order in PendingPayment at version 0.
//
// Example:
//
//	item, _ := order.NewLineItem(1, "Dumplings", decimal.RequireFromString("8.00"), 2)
//	o, err := order.NewOrder(id, "alice", "1 Main St", "555-0100", []order.LineItem{item}, time.Now())
func NewOrder(
	id kernel.OrderID,
	customerID, address, phone string,
	items []LineItem,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setPhone(phone),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.setTotal(o.computeTotal()); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. The stored total is kept
// as-is rather than recomputed.
func RestoreOrder(
	id kernel.OrderID,
	customerID, address, phone string,
	items []LineItem,
	total decimal.Decimal,
	status Status,
	version int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		version:       version,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setPhone(phone),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.items = append([]LineItem(nil), items...)
	o.total = total

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) Phone() string {
	return o.phone
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to target if the table allows it. A
// self-transition is accepted and leaves the status untouched, but still
// produces a Transition so that it gets recorded.
func (o *Order) TransitionTo(target Status, reason, operator, remarks string) (Transition, error) {
	if !IsValidTransition(o.status, target) {
		return Transition{}, o.illegal(target)
	}
	return o.apply(target, reason, operator, remarks), nil
}

// Pay moves PendingPayment to Paid.
func (o *Order) Pay(operator string) (Transition, error) {
	return o.move(Paid, ReasonPaymentCompleted, operator)
}

// StartDelivery moves Paid to Delivering.
func (o *Order) StartDelivery(operator string) (Transition, error) {
	return o.move(Delivering, ReasonDeliveryStarted, operator)
}

// ConfirmDelivery moves Delivering to Completed.
func (o *Order) ConfirmDelivery(operator string) (Transition, error) {
	return o.move(Completed, ReasonDeliveryConfirmed, operator)
}

// Cancel is allowed from PendingPayment and Paid.
func (o *Order) Cancel(reason, operator string) (Transition, error) {
	return o.move(Cancelled, reason, operator)
}

// RequestRefund is allowed from Paid, Delivering and Completed.
func (o *Order) RequestRefund(reason, operator string) (Transition, error) {
	return o.move(Refunding, reason, operator)
}

// CompleteRefund is allowed from Refunding only.
func (o *Order) CompleteRefund(reason, operator string) (Transition, error) {
	return o.move(Refunded, reason, operator)
}

func (o *Order) move(target Status, reason, operator string) (Transition, error) {
	if !o.status.CanMoveTo(target) {
		return Transition{}, o.illegal(target)
	}
	return o.apply(target, reason, operator, ""), nil
}

func (o *Order) apply(target Status, reason, operator, remarks string) Transition {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		operator = DefaultOperator
	}

	t := Transition{
		OrderID:         o.id,
		From:            o.status,
		To:              target,
		Reason:          strings.TrimSpace(reason),
		Operator:        operator,
		Remarks:         strings.TrimSpace(remarks),
		ExpectedVersion: o.version,
	}

	o.status = target
	o.version++

	return t
}

func (o *Order) illegal(target Status) error {
	return errs.NewIllegalTransitionError(o.id.String(), o.status.String(), target.String())
}

func (o *Order) computeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	var joined error
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			joined = errors.Join(joined, fmt.Errorf("item %d: %w", idx, err))
		}
	}
	if joined != nil {
		return joined
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is not greater than 0", total.StringFixed(2)))
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	return nil
}
