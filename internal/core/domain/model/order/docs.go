// Package order holds the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: header fields, frozen line items, total, status and version
//   - LineItem: a product snapshot (name, unit price) with a quantity
//   - Status: the seven lifecycle statuses and the transition table
//   - Transition: the record of one accepted status change
//
// Key business rules:
//   - a new order starts in PendingPayment with a positive total
//   - the generic TransitionTo accepts any table edge and the self-transition
//   - named operations (Pay, Cancel, RequestRefund, ...) require a real edge
//   - Cancelled and Refunded are final
package order
