// Package errs provides standardized error types for the commerce application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the recoverable failure classes of the order lifecycle:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or semantically invalid
//   - ObjectNotFoundError: a referenced identity does not exist
//   - InvalidTransitionError: a status change not permitted from the current state
//   - InsufficientStockError: a stock check or debit failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All five classes are recoverable at the request boundary and map to
// distinct client-facing responses; anything else is treated as a server
// fault.
package errs
