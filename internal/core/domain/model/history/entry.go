package history

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable history row. Status descriptions are captured at
// write time so that renaming a status never rewrites the past.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.OrderID
	fromCode   int
	toCode     int
	fromDesc   string
	toDesc     string
	reason     string
	operator   string
	operatedAt time.Time
	remarks    string

	isConstructed bool
}

// NewEntry records an accepted transition at the given instant.
func NewEntry(t order.Transition, operatedAt time.Time) (*Entry, error) {
	if err := t.OrderID.Validate(); err != nil {
		return nil, err
	}
	if operatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("operatedAt")
	}

	return &Entry{
		id:            kernel.NewUUID(),
		orderID:       t.OrderID,
		fromCode:      t.From.Code(),
		toCode:        t.To.Code(),
		fromDesc:      t.From.Description(),
		toDesc:        t.To.Description(),
		reason:        t.Reason,
		operator:      t.Operator,
		operatedAt:    operatedAt.UTC(),
		remarks:       t.Remarks,
		isConstructed: true,
	}, nil
}

// RestoreEntry rebuilds a stored row. Status codes are kept raw: an entry
// written by an older build with an unknown code still reads back.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.OrderID,
	fromCode, toCode int,
	fromDesc, toDesc, reason, operator string,
	operatedAt time.Time,
	remarks string,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(operator) == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("operator", fmt.Errorf("entry %s has no operator", id))
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		fromCode:      fromCode,
		toCode:        toCode,
		fromDesc:      fromDesc,
		toDesc:        toDesc,
		reason:        reason,
		operator:      operator,
		operatedAt:    operatedAt.UTC(),
		remarks:       remarks,
		isConstructed: true,
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID         { return e.id }
func (e *Entry) OrderID() kernel.OrderID { return e.orderID }
func (e *Entry) FromCode() int           { return e.fromCode }
func (e *Entry) ToCode() int             { return e.toCode }
func (e *Entry) FromDescription() string { return e.fromDesc }
func (e *Entry) ToDescription() string   { return e.toDesc }
func (e *Entry) Reason() string          { return e.reason }
func (e *Entry) Operator() string        { return e.operator }
func (e *Entry) OperatedAt() time.Time   { return e.operatedAt }
func (e *Entry) Remarks() string         { return e.remarks }

// To resolves the target status, failing for codes this build does not know.
func (e *Entry) To() (order.Status, error) {
	return order.FromCode(e.toCode)
}

// Summary aggregates an order's history.
type Summary struct {
	OrderID kernel.OrderID
	Count   int64
	Latest  *Entry
}
