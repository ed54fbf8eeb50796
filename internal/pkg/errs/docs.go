// Package errs provides the typed errors shared by the delivery showcase.
// Domain code returns these instead of printing, and the application layer
// decides whether a failure is a warning or a hard stop.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value is present but breaks a business rule
//   - ValueIsOutOfRangeError: a value (usually an index) is outside its bounds
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - A struct type with the offending parameter and an optional cause
//   - Constructor functions with and without cause
//
// Callers classify failures with errors.Is against the sentinels.
package errs
