package model

import "time"

// SportVenue represents a bookable sports facility owned by an
// administrator.  The (Name, Venue) pair is unique: two courts may
// share a name only when they sit at different locations.  This
// struct corresponds to a row in the `sport_venues` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the facility (e.g. "Court A").
//  Venue     – location string (e.g. "Gym 1").
//  Available – whether the facility currently accepts reservations.
//  UserID    – administering user.
//  CreatedAt – timestamp when the venue was registered.
//  UpdatedAt – timestamp of last update.
type SportVenue struct {
    ID        uint64    // sport_venues.id
    Name      string    // sport_venues.name
    Venue     string    // sport_venues.venue
    Available bool      // sport_venues.available
    UserID    uint64    // sport_venues.user_id
    CreatedAt time.Time // sport_venues.created_at
    UpdatedAt time.Time // sport_venues.updated_at
}
