// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The taxonomy mirrors the operation boundary contract:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, nothing mutated
//   - ObjectNotFoundError: the object does not exist or is not visible to
//     the requesting principal (deliberately the same error either way)
//   - ConflictError: a precondition no longer holds; refresh and retry
//   - PermissionDeniedError: the principal's role forbids the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
