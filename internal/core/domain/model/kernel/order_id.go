package kernel

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"

	"github.com/lithammer/shortuuid/v4"
)

const (
	// OrderIDPrefix starts every business order id.
	OrderIDPrefix = "ORD"

	// OrderIDMaxLength bounds the stored column width.
	OrderIDMaxLength = 32
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via an OrderIDGenerator or OrderIDFromString")

// OrderID is the business order code shown to customers and used as the foreign
// key of line items and history entries. It is distinct from the numeric
// primary key of the orders table.
type OrderID struct {
	value string
}

// OrderIDFromString accepts an id previously produced by a generator.
func OrderIDFromString(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if !strings.HasPrefix(s, OrderIDPrefix) || len(s) == len(OrderIDPrefix) || len(s) > OrderIDMaxLength {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%q is not a valid order id", s))
	}
	return OrderID{value: s}, nil
}

func (id OrderID) String() string {
	return id.value
}

func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// ShortUUIDFunc returns a random, URL-safe token.
type ShortUUIDFunc func() string

// OrderIDGenerator builds OrderIDs from random short UUIDs. The ids carry no
// timestamp or counter, so they cannot be enumerated.
type OrderIDGenerator struct {
	shortUUID ShortUUIDFunc
}

// NewOrderIDGenerator uses shortuuid.New (base57 encoding of a v4 UUID).
func NewOrderIDGenerator() *OrderIDGenerator {
	return NewOrderIDGeneratorWith(shortuuid.New)
}

// NewOrderIDGeneratorWith lets tests control the random part.
func NewOrderIDGeneratorWith(shortUUID ShortUUIDFunc) *OrderIDGenerator {
	return &OrderIDGenerator{shortUUID: shortUUID}
}

// Generate returns a fresh OrderID.
func (g *OrderIDGenerator) Generate() (OrderID, error) {
	return OrderIDFromString(OrderIDPrefix + g.shortUUID())
}
