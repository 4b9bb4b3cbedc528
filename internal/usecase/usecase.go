// Package usecase hosts one use case per API operation.  Use cases
// enforce role and ownership rules, delegate persistence to store
// interfaces and wrap results in the standard response envelope.
// Handlers stay thin: bind, validate, call, serialize.
package usecase

import (
    "database/sql"
    "errors"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
)

// Response is the envelope returned by every use case and serialized
// verbatim by handlers.  Code doubles as the HTTP status.
type Response struct {
    Code    int    `json:"code"`
    Status  string `json:"status"`
    Message string `json:"message"`
    Data    any    `json:"data,omitempty"`
}

// Principal is the authenticated identity attached to a request.
// The transport layer resolves it from the access token; use cases
// never parse credentials themselves.
type Principal struct {
    ID   uint64
    Role string
}

// RequireAnyRole returns a Forbidden error unless the principal holds
// one of the allowed roles.  Route middleware performs the same check
// before dispatch; use cases call this again so the rule holds even
// when an operation is invoked outside HTTP.
func RequireAnyRole(p Principal, allowed ...string) error {
    for _, role := range allowed {
        if p.Role == role {
            return nil
        }
    }
    return apperr.Forbidden("you do not have the required permissions")
}

// notFoundOr maps sql.ErrNoRows to a NotFound error with the given
// message and wraps anything else as an internal store failure.
func notFoundOr(err error, message string) error {
    if errors.Is(err, sql.ErrNoRows) {
        return apperr.NotFound(message)
    }
    return apperr.InternalServer(err.Error())
}
