// Package history models the append-only audit log of order status changes.
//
// Every committed transition produces exactly one Entry. Order creation
// produces none, so a fresh order has an empty history.
package history
