// Package errs provides standardized error types for the order alerting application.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - TransportError: a remote API could not be reached or answered with a non-2xx status
//   - ParseError: a remote API answered with a body that cannot be decoded
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrTransport)
//   - A struct type with fields for error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() exposing both the sentinel and the cause,
//     so errors.Is matches the error kind as well as wrapped context errors
package errs
