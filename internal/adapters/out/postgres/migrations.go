package postgres

import (
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/historyrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

const historyOrderFK = "fk_order_history_order"

// Migrate creates or updates every table used by the service. History rows
// reference orders by business id; the constraint is added separately since
// HistoryDTO carries no association field.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&historyrepo.HistoryDTO{},
	); err != nil {
		return err
	}

	if db.Migrator().HasConstraint(&historyrepo.HistoryDTO{}, historyOrderFK) {
		return nil
	}

	return db.Exec(`
		ALTER TABLE order_history
		ADD CONSTRAINT ` + historyOrderFK + `
		FOREIGN KEY (order_id) REFERENCES orders (order_id) ON DELETE CASCADE
	`).Error
}
