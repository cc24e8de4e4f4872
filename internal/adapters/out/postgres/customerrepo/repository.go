// Package customerrepo answers customer existence checks against the
// customers table.
package customerrepo

import (
	"context"
	"time"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// CustomerDTO is the customers table. ID is the login name.
type CustomerDTO struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// GormCustomerDirectory implements ports.CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

func (d *GormCustomerDirectory) Exists(ctx context.Context, customerID string) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", customerID).Count(&count).Error; err != nil {
		return false, errs.NewStorageError("customer exists", err)
	}
	return count > 0, nil
}
