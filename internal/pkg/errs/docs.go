// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the recurring failure scenarios of the
// order and delivery core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: unknown identifiers
//   - PreconditionFailedError: entity not in the state a transition requires
//   - InvalidTransitionError: undefined state machine edge
//   - TaskAlreadyClaimedError: the rider-matching race was lost (expected outcome)
//   - UnauthorizedError: caller lacks rights over the entity
//   - PaymentMismatchError: reported amount disagrees with the staged total
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrPreconditionFailed)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Handlers and adapters classify errors exclusively through errors.Is against
// the sentinels, never by string matching.
package errs
