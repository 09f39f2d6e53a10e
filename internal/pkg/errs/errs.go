package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
// Every concrete error type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrTaskAlreadyClaimed = errors.New("task already claimed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPaymentMismatch    = errors.New("payment mismatch")
)

// sanitize flattens multi-line values so they remain readable in single-line logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when an entity cannot be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v (cause: %s)",
			e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PreconditionFailedError is returned when an entity is not in the state a
// requested operation requires. The entity itself is left untouched.
type PreconditionFailedError struct {
	ParamName string
	Current   string
	Required  string
	Cause     error
}

// NewPreconditionFailedError creates a PreconditionFailedError describing the
// entity, its current state, and the state the operation requires.
func NewPreconditionFailedError(paramName, current, required string) *PreconditionFailedError {
	return &PreconditionFailedError{ParamName: paramName, Current: current, Required: required}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping an underlying cause.
func NewPreconditionFailedErrorWithCause(paramName, current, required string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{ParamName: paramName, Current: current, Required: required, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %s, requires %s (cause: %s)",
			ErrPreconditionFailed, e.ParamName, e.Current, e.Required, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s, requires %s",
		ErrPreconditionFailed, e.ParamName, e.Current, e.Required))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// InvalidTransitionError is returned when a state machine is asked to move
// along an edge its transition table does not define.
type InvalidTransitionError struct {
	ParamName string
	From      string
	To        string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given entity and edge.
func NewInvalidTransitionError(paramName, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s from %s to %s", ErrInvalidTransition, e.ParamName, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TaskAlreadyClaimedError is returned when a rider loses the claim race for a
// delivery task. It is an expected control-flow outcome, not a fault: callers
// should detect it with errors.Is(err, ErrTaskAlreadyClaimed) and re-poll.
type TaskAlreadyClaimedError struct {
	TaskID string
}

// NewTaskAlreadyClaimedError creates a TaskAlreadyClaimedError for the given task.
func NewTaskAlreadyClaimedError(taskID string) *TaskAlreadyClaimedError {
	return &TaskAlreadyClaimedError{TaskID: taskID}
}

func (e *TaskAlreadyClaimedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrTaskAlreadyClaimed, e.TaskID))
}

func (e *TaskAlreadyClaimedError) Unwrap() error {
	return ErrTaskAlreadyClaimed
}

// UnauthorizedError is returned when the caller has no rights over the entity
// it is trying to act on.
type UnauthorizedError struct {
	ParamName string
	ID        any
}

// NewUnauthorizedError creates an UnauthorizedError for the given parameter and caller ID.
func NewUnauthorizedError(paramName string, id any) *UnauthorizedError {
	return &UnauthorizedError{ParamName: paramName, ID: id}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrUnauthorized, e.ParamName, e.ID))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// PaymentMismatchError is returned when an externally reported payment amount
// disagrees with the staged batch total. The batch stays Pending for manual
// review; the payment signal is never discarded.
type PaymentMismatchError struct {
	Reference string
	Reported  string
	Expected  string
}

// NewPaymentMismatchError creates a PaymentMismatchError for the given reference and amounts.
func NewPaymentMismatchError(reference, reported, expected string) *PaymentMismatchError {
	return &PaymentMismatchError{Reference: reference, Reported: reported, Expected: expected}
}

func (e *PaymentMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: reference is: %s, reported %s, staged %s",
		ErrPaymentMismatch, e.Reference, e.Reported, e.Expected))
}

func (e *PaymentMismatchError) Unwrap() error {
	return ErrPaymentMismatch
}
