// Package repository implements data access over MySQL.  This file
// defines sentinel errors reused across repositories so that the use
// case layer can distinguish failure scenarios without inspecting
// driver-specific error strings.
package repository

import "errors"

// ErrScheduleConflict is returned when a reservation write would
// overlap an existing reservation on the same venue and date.  Use
// cases translate it into an HTTP 409 response.
var ErrScheduleConflict = errors.New("schedule conflict")

// ErrInvalidInterval is returned when the candidate reservation's
// hour pair cannot be parsed or does not form a forward interval.
// Use cases translate it into an HTTP 400 response.
var ErrInvalidInterval = errors.New("invalid reservation interval")

// ErrEmailExists is returned when a user insert or update collides
// with the unique email index.
var ErrEmailExists = errors.New("email already exists")

// ErrPhoneExists is returned when a user insert or update collides
// with the unique phone index.
var ErrPhoneExists = errors.New("phone already exists")

// ErrVenueExists is returned when a sport venue insert or update
// collides with the unique (name, venue) index.
var ErrVenueExists = errors.New("sport venue already exists")
