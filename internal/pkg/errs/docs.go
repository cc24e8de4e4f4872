// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalTransitionError: For when an order status change is not allowed
//   - ConcurrentModificationError: For when an optimistic version check fails
//   - StorageError: For transaction and driver failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers branch on the sentinel with errors.Is. Only StorageError signals an
// infrastructure failure; every other type is an expected rejection.
package errs
