package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrTransport         = errors.New("transport error")
	ErrParse             = errors.New("parse error")
)

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return chain(ErrValueIsRequired, e.Cause)
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return chain(ErrValueIsInvalid, e.Cause)
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(fmt.Sprint(e.Value)), e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return chain(ErrValueIsOutOfRange, e.Cause)
}

// TransportError reports a failed call to a remote API: the request never completed,
// or the server answered with a non-2xx status (StatusCode is 0 in the former case).
type TransportError struct {
	Operation  string
	StatusCode int
	Cause      error
}

func NewTransportError(operation string, statusCode int) *TransportError {
	return &TransportError{Operation: operation, StatusCode: statusCode}
}

func NewTransportErrorWithCause(operation string, statusCode int, cause error) *TransportError {
	return &TransportError{Operation: operation, StatusCode: statusCode, Cause: cause}
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrTransport, e.Operation)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	return withCause(msg, e.Cause)
}

func (e *TransportError) Unwrap() []error {
	return chain(ErrTransport, e.Cause)
}

// ParseError reports a response body that could not be turned into domain values.
type ParseError struct {
	Operation string
	Cause     error
}

func NewParseError(operation string) *ParseError {
	return &ParseError{Operation: operation}
}

func NewParseErrorWithCause(operation string, cause error) *ParseError {
	return &ParseError{Operation: operation, Cause: cause}
}

func (e *ParseError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrParse, e.Operation), e.Cause)
}

func (e *ParseError) Unwrap() []error {
	return chain(ErrParse, e.Cause)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

func chain(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// sanitize keeps remote payloads on a single log line.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
