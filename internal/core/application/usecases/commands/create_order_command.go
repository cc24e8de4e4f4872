package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderLine is one requested (product, quantity) pair.
type CreateOrderLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand is a customer's request to place an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("alice", []CreateOrderLine{{ProductID: 1, Quantity: 2}},
//	    "1 Main St", "555-0100")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []services.LineRequest
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand rejects the whole request if any line is invalid.
func NewCreateOrderCommand(customerID string, lines []CreateOrderLine, address, phone string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setAddress(address),
		cmd.setPhone(phone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns a copy of the requested lines in request order.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	return append([]services.LineRequest(nil), c.lines...)
}

// ProductIDs returns the distinct product ids, ascending.
func (c CreateOrderCommand) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(c.lines))
	ids := make([]int64, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c CreateOrderCommand) Phone() string {
	return c.phone
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var joined error
	requests := make([]services.LineRequest, 0, len(lines))
	for idx, line := range lines {
		if line.ProductID <= 0 {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].productId", idx), fmt.Errorf("%d is not greater than 0", line.ProductID)))
		}
		if line.Quantity <= 0 {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", idx), fmt.Errorf("%d is not greater than 0", line.Quantity)))
		}
		requests = append(requests, services.LineRequest{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	if joined != nil {
		return joined
	}

	c.lines = requests
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
