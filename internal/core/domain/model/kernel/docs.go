// Package kernel provides the identifiers shared by the ordering domain model.
//
// The package includes:
//   - OrderID: the externally visible business order code ("ORD" + short UUID)
//   - OrderIDGenerator: produces fresh, non-sequential OrderIDs
//   - UUID: identifier for history entries and other internal records
//
// All identifiers are immutable values whose zero value fails Validate.
package kernel
