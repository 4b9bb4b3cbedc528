// Package queue defines message payloads exchanged over the message
// broker and the background consumer that turns them into outbound
// notifications.
package queue

// Queue names used by the publisher and the consumer.  Both sides
// declare them durably so either can start first.
const (
    AccountCreatedQueue        = "account.created"
    ReservationRequestedQueue  = "reservation.requested"
    ReservationConfirmedQueue  = "reservation.confirmed"
)

// AccountCreatedEvent is published when a user registers.  The
// consumer renders the activation email from it; the raw activation
// token travels only inside the link.
type AccountCreatedEvent struct {
    UserID         uint64 `json:"user_id"`
    Name           string `json:"name"`
    Lastname       string `json:"lastname"`
    Email          string `json:"email"`
    ActivationLink string `json:"activation_link"`
    CreatedAt      string `json:"created_at"`
}

// ReservationRequestedEvent is published when a reservation is
// created.  It carries enough information for downstream consumers to
// notify the administrator without querying the primary database.
type ReservationRequestedEvent struct {
    ReservationID uint64 `json:"reservation_id"`
    Reference     string `json:"reference"`
    VenueName     string `json:"venue_name"`
    VenueLocation string `json:"venue_location"`
    Date          string `json:"date"`
    HourInitial   string `json:"hour_initial"`
    HourFinish    string `json:"hour_finish"`
    RequesterName string `json:"requester_name"`
    RequesterMail string `json:"requester_email"`
    RequestedAt   string `json:"requested_at"`
}

// ReservationConfirmedEvent is published when an administrator
// confirms a reservation via update.
type ReservationConfirmedEvent struct {
    ReservationID uint64 `json:"reservation_id"`
    Reference     string `json:"reference"`
    VenueName     string `json:"venue_name"`
    VenueLocation string `json:"venue_location"`
    Date          string `json:"date"`
    HourInitial   string `json:"hour_initial"`
    HourFinish    string `json:"hour_finish"`
    RequesterName string `json:"requester_name"`
    RequesterMail string `json:"requester_email"`
    ConfirmedAt   string `json:"confirmed_at"`
}
