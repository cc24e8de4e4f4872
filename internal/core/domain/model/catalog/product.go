package catalog

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct")

// Product is a catalog entry. Sales is the cumulative number of units sold.
type Product struct {
	id        int64
	name      string
	price     decimal.Decimal
	available bool
	sales     int64

	isConstructed bool
}

func NewProduct(id int64, name string, price decimal.Decimal, available bool, sales int64) (Product, error) {
	p := Product{available: available, sales: sales, isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p Product) ID() int64              { return p.id }
func (p Product) Name() string           { return p.name }
func (p Product) Price() decimal.Decimal { return p.price }
func (p Product) IsAvailable() bool      { return p.available }
func (p Product) Sales() int64           { return p.sales }

// EnsureOrderable rejects delisted products.
func (p Product) EnsureOrderable() error {
	if !p.available {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("product %d is not available", p.id))
	}
	return nil
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}
