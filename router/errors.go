package router

import (
	"fmt"
	"net/http"
	"strconv"
)

// RegistrationError reports a malformed pattern or a duplicate route at
// registration time. It is never produced while serving requests.
type RegistrationError struct {
	Pattern string
	Reason  string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("albrouter: register %q: %s", e.Pattern, e.Reason)
}

// Error is an HTTP status carried as an error value. Handlers return it
// (or raise it through Abort) to short-circuit into a response with the
// given status code; the engine converts it without treating it as a
// fault.
type Error struct {
	Code    int
	Message any
}

// NewError returns an Error with the given status code and message.
func NewError(code int, message any) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Description(), e.Message)
}

// Description returns the "<code> <reason phrase>" form of the status.
func (e *Error) Description() string {
	return statusDescription(e.Code)
}

// Abort stops handler execution immediately and unwinds to the engine,
// which responds with the given status code and message. It must only be
// called from within a handler invoked by the engine.
func Abort(code int, message any) {
	panic(NewError(code, message))
}

// Status helpers mirroring the common client and server errors.

func BadRequest(message any) *Error { return NewError(http.StatusBadRequest, message) }

func Unauthorized(message any) *Error { return NewError(http.StatusUnauthorized, message) }

func Forbidden(message any) *Error { return NewError(http.StatusForbidden, message) }

func NotFound(message any) *Error { return NewError(http.StatusNotFound, message) }

func Conflict(message any) *Error { return NewError(http.StatusConflict, message) }

func InternalServerError(message any) *Error {
	return NewError(http.StatusInternalServerError, message)
}

func NotImplemented(message any) *Error { return NewError(http.StatusNotImplemented, message) }

func BadGateway(message any) *Error { return NewError(http.StatusBadGateway, message) }

func statusDescription(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code) + " " + text
}
