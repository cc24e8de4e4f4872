package catalogrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormProductCatalog implements ports.ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

func (c *GormProductCatalog) Lookup(ctx context.Context, productID int64) (catalog.Product, error) {
	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("productId", productID)
		}
		return catalog.Product{}, errs.NewStorageError("lookup product", err)
	}
	return toDomain(dto)
}

// LookupMany fetches all requested products in one round trip.
func (c *GormProductCatalog) LookupMany(ctx context.Context, productIDs []int64) (map[int64]catalog.Product, error) {
	products := make(map[int64]catalog.Product, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := c.db.WithContext(ctx).Where("id = ANY(?)", pq.Array(productIDs)).Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("lookup products", err)
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.ID()] = p
	}

	return products, nil
}

// IncrementSales runs UPDATE products SET sales = sales + ? so concurrent
// orders serialize on the row lock instead of overwriting each other.
func (c *GormProductCatalog) IncrementSales(ctx context.Context, productID int64, delta int) error {
	result := c.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", productID).
		UpdateColumn("sales", gorm.Expr("sales + ?", delta))
	if result.Error != nil {
		return errs.NewStorageError("increment sales", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}
	return nil
}
