package order

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when validating a zero-value LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")

// LineItem is one product line of an order. Name and unit price are copied
// from the catalog when the order is created and never change afterwards.
type LineItem struct {
	productID     int64
	productName   string
	unitPrice     decimal.Decimal
	quantity      int
	isConstructed bool
}

// NewLineItem validates and freezes a product snapshot.
func NewLineItem(productID int64, productName string, unitPrice decimal.Decimal, quantity int) (LineItem, error) {
	item := LineItem{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) Validate() error {
	if !i.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (i LineItem) ProductID() int64 {
	return i.productID
}

func (i LineItem) ProductName() string {
	return i.productName
}

func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal is unit price times quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *LineItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price.String()))
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
