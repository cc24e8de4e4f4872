// Package queries contains read-only operations. Order reads go straight to
// the tables through GORM raw SQL; history reads go through the
// HistoryRepository port.
package queries
