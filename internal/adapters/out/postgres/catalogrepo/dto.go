// Package catalogrepo reads products and maintains their sales counters.
package catalogrepo

import (
	"foodorder/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

// ProductDTO is the products table.
type ProductDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null"`
	Sales     int64           `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (catalog.Product, error) {
	return catalog.NewProduct(dto.ID, dto.Name, dto.Price, dto.Available, dto.Sales)
}
