// Package services provides domain services that work across aggregates of
// the ordering domain.
//
// The package includes:
//   - OrderPricer: turns requested lines into priced line item snapshots using
//     catalog products, and computes per-product sales increments
package services
