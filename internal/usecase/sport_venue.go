package usecase

import (
    "context"
    "database/sql"
    "errors"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/repository"
)

// VenueStore is the persistence contract consumed by the sport venue
// use cases.  *repository.SportVenueRepo is the concrete
// implementation.
type VenueStore interface {
    Create(ctx context.Context, v model.SportVenue) (uint64, error)
    GetByID(ctx context.Context, id uint64) (model.SportVenue, error)
    GetByNameAndVenue(ctx context.Context, name, venue string) (model.SportVenue, error)
    List(ctx context.Context) ([]model.SportVenue, error)
    ListByAvailable(ctx context.Context, available bool) ([]model.SportVenue, error)
    Update(ctx context.Context, v model.SportVenue) error
    Delete(ctx context.Context, id uint64) error
}

// VenueInput carries the validated fields of a venue create or
// update request.
type VenueInput struct {
    Name      string
    Venue     string
    Available bool
}

// SportVenueUseCases bundles the venue catalog operations.  Writes
// are admin-only; reads are open to any authenticated user.
type SportVenueUseCases struct {
    venues VenueStore
}

// NewSportVenueUseCases constructs the sport venue use cases.
func NewSportVenueUseCases(venues VenueStore) *SportVenueUseCases {
    return &SportVenueUseCases{venues: venues}
}

// Create registers a new venue administered by the calling admin.
// The (name, venue) pair must be unique; the pre-check gives a clean
// message and the database index closes the race behind it.
func (uc *SportVenueUseCases) Create(ctx context.Context, p Principal, in VenueInput) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    if _, err := uc.venues.GetByNameAndVenue(ctx, in.Name, in.Venue); err == nil {
        return nil, apperr.Conflict("the sport venue already exists")
    } else if !errors.Is(err, sql.ErrNoRows) {
        return nil, apperr.InternalServer(err.Error())
    }

    v := model.SportVenue{Name: in.Name, Venue: in.Venue, Available: in.Available, UserID: p.ID}
    id, err := uc.venues.Create(ctx, v)
    if err != nil {
        if errors.Is(err, repository.ErrVenueExists) {
            return nil, apperr.Conflict("the sport venue already exists")
        }
        return nil, apperr.InternalServer(err.Error())
    }
    v.ID = id

    created, err := uc.venues.GetByID(ctx, id)
    if err == nil {
        v = created
    }
    return &Response{Code: 201, Status: "Created", Message: "sport venue created", Data: venueJSON(v)}, nil
}

// Find returns every venue in the catalog.
func (uc *SportVenueUseCases) Find(ctx context.Context) (*Response, error) {
    venues, err := uc.venues.List(ctx)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "sport venue list", Data: venuesJSON(venues)}, nil
}

// FindByAvailable returns venues filtered by availability.
func (uc *SportVenueUseCases) FindByAvailable(ctx context.Context, available bool) (*Response, error) {
    venues, err := uc.venues.ListByAvailable(ctx, available)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "sport venue list", Data: venuesJSON(venues)}, nil
}

// FindByID returns a single venue.
func (uc *SportVenueUseCases) FindByID(ctx context.Context, id uint64) (*Response, error) {
    v, err := uc.venues.GetByID(ctx, id)
    if err != nil {
        return nil, notFoundOr(err, "the sport venue was not found")
    }
    return &Response{Code: 200, Status: "OK", Message: "sport venue information", Data: venueJSON(v)}, nil
}

// Update rewrites a venue's fields.  Admin-only.
func (uc *SportVenueUseCases) Update(ctx context.Context, p Principal, id uint64, in VenueInput) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    v, err := uc.venues.GetByID(ctx, id)
    if err != nil {
        return nil, notFoundOr(err, "the sport venue does not exist")
    }
    v.Name = in.Name
    v.Venue = in.Venue
    v.Available = in.Available
    if err := uc.venues.Update(ctx, v); err != nil {
        if errors.Is(err, repository.ErrVenueExists) {
            return nil, apperr.Conflict("the sport venue already exists")
        }
        return nil, apperr.InternalServer(err.Error())
    }
    updated, err := uc.venues.GetByID(ctx, id)
    if err == nil {
        v = updated
    }
    return &Response{Code: 200, Status: "OK", Message: "the sport venue has been updated", Data: venueJSON(v)}, nil
}

// Delete permanently removes a venue from the catalog.  Admin-only.
func (uc *SportVenueUseCases) Delete(ctx context.Context, p Principal, id uint64) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    if _, err := uc.venues.GetByID(ctx, id); err != nil {
        return nil, notFoundOr(err, "the sport venue was not found")
    }
    if err := uc.venues.Delete(ctx, id); err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "the sport venue has been deleted"}, nil
}

// VenuePayload is the client-facing shape of a venue.
type VenuePayload struct {
    ID        uint64 `json:"id"`
    Name      string `json:"name"`
    Venue     string `json:"venue"`
    Available bool   `json:"available"`
    UserID    uint64 `json:"user_id"`
}

func venueJSON(v model.SportVenue) VenuePayload {
    return VenuePayload{ID: v.ID, Name: v.Name, Venue: v.Venue, Available: v.Available, UserID: v.UserID}
}

func venuesJSON(vs []model.SportVenue) []VenuePayload {
    out := make([]VenuePayload, 0, len(vs))
    for _, v := range vs {
        out = append(out, venueJSON(v))
    }
    return out
}
