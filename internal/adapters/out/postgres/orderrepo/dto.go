// Package orderrepo persists order aggregates: one row in orders plus one row
// per line item in order_items.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. ID is a surrogate key; OrderID is the
// business id exposed to customers.
type OrderDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID string          `gorm:"type:varchar(64);not null;index"`
	Address    string          `gorm:"type:varchar(255);not null"`
	Phone      string          `gorm:"type:varchar(32);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     int             `gorm:"type:smallint;not null;index"`
	Version    int             `gorm:"type:int;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	Items      []LineItemDTO   `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the order_items table.
type LineItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     string          `gorm:"type:varchar(32);not null;index"`
	ProductID   int64           `gorm:"not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"type:int;not null"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:     aggregate.ID().String(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Address:    aggregate.Address(),
		Phone:      aggregate.Phone(),
		Total:      aggregate.Total(),
		Status:     aggregate.Status().Code(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
	}
}

// toDomain reports a row with an unrecognised status code as not found.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.FromCode(dto.Status)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", dto.OrderID, err)
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.ProductID, itemDTO.ProductName, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CustomerID, dto.Address, dto.Phone, items,
		dto.Total, status, dto.Version, dto.CreatedAt)
}
