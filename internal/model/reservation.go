package model

import "time"

// Reservation status values.  A reservation starts as pending,
// becomes confirmed when an administrator approves it, cancelled
// when the requester soft-deletes it, and completed once the booked
// slot has passed (driven by an external process).
const (
    StatusPending   = "pending"
    StatusConfirmed = "confirmed"
    StatusCancelled = "cancelled"
    StatusCompleted = "completed"
)

// Reservation records a user's booking of a sport venue for a given
// date and time interval.  The interval is stored as two wall-clock
// strings in 12-hour format ("08:00 AM") and interpreted as the
// half-open range [HourInitial, HourFinish).  This struct corresponds
// to a row in the `reservations` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Reference          – public UUID handed to clients.
//  DateReservation    – calendar date of the booking (date only).
//  Status             – pending, confirmed, cancelled or completed.
//  Hours              – total duration in whole hours, at least 1.
//  HourInitial        – start of the interval, "hh:mm AM/PM".
//  HourFinish         – end of the interval, "hh:mm AM/PM".
//  SportsVenueID      – venue being booked.
//  ConfirmReservation – true once an administrator confirms.
//  ToUserID           – requester the reservation is for.
//  UserID             – administrator managing the reservation.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Reservation struct {
    ID                 uint64    // reservations.id
    Reference          string    // reservations.reference
    DateReservation    string    // reservations.date_reservation (YYYY-MM-DD)
    Status             string    // reservations.status
    Hours              uint32    // reservations.hours
    HourInitial        string    // reservations.hour_initial
    HourFinish         string    // reservations.hour_finish
    SportsVenueID      uint64    // reservations.sports_venue_id
    ConfirmReservation bool      // reservations.confirm_reservation
    ToUserID           uint64    // reservations.to_user_id
    UserID             uint64    // reservations.user_id
    CreatedAt          time.Time // reservations.created_at
    UpdatedAt          time.Time // reservations.updated_at
}
