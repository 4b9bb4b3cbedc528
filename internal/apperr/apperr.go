// Package apperr defines the typed errors raised by use cases and
// translated into HTTP responses at the boundary.  Each error carries
// the HTTP code and a short status label so handlers never guess a
// status from a message string.
package apperr

import "errors"

// Error is an HTTP-code-bearing application error.  Use the
// constructors below rather than building one by hand so that code
// and status stay consistent.
type Error struct {
    Code    int    `json:"code"`
    Status  string `json:"status"`
    Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// BadRequest signals malformed or invalid input, including a
// double-cancel attempt on an already cancelled reservation.
func BadRequest(message string) *Error {
    return &Error{Code: 400, Status: "Bad-Request", Message: message}
}

// Unauthorized signals missing or invalid credentials.
func Unauthorized(message string) *Error {
    return &Error{Code: 401, Status: "Unauthorized", Message: message}
}

// Forbidden signals that the caller's role does not permit the
// operation.
func Forbidden(message string) *Error {
    return &Error{Code: 403, Status: "Forbidden", Message: message}
}

// NotFound signals that an entity is absent or not owned by the
// requester.  Ownership-scoped lookups return NotFound rather than
// Forbidden so callers cannot probe for other users' records.
func NotFound(message string) *Error {
    return &Error{Code: 404, Status: "Not-Found", Message: message}
}

// Conflict signals a duplicate venue or a double-booking overlap.
func Conflict(message string) *Error {
    return &Error{Code: 409, Status: "Conflict", Message: message}
}

// InternalServer signals an unexpected store failure or missing
// configuration, such as no administrator account existing.
func InternalServer(message string) *Error {
    return &Error{Code: 500, Status: "Internal-Server", Message: message}
}

// From extracts an *Error from err, unwrapping as needed.  It returns
// nil when err carries no application error.
func From(err error) *Error {
    var e *Error
    if errors.As(err, &e) {
        return e
    }
    return nil
}
