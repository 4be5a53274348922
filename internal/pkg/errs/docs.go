// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by every domain value object and entity.
//
// The package includes:
//   - ValueIsRequiredError: For when a required value is missing or blank
//   - ValueIsInvalidError: For when a value is present but breaks a business rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with the name of the offending parameter and an optional cause
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is keeps working after wrapping
package errs
