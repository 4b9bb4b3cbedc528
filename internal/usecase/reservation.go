package usecase

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/logger"
    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/queue"
    "github.com/mvalenciah/sport-venue-reservation/internal/repository"
)

// ReservationStore is the persistence contract consumed by the
// reservation use cases.  *repository.ReservationRepo is the concrete
// implementation; tests substitute an in-memory fake.
type ReservationStore interface {
    Create(ctx context.Context, res *model.Reservation) (*repository.ReservationDetail, error)
    Update(ctx context.Context, id uint64, res *model.Reservation) (*repository.ReservationDetail, error)
    GetByID(ctx context.Context, id uint64) (*repository.ReservationDetail, error)
    GetByIDForUser(ctx context.Context, id, toUserID uint64) (*repository.ReservationDetail, error)
    List(ctx context.Context) ([]*repository.ReservationDetail, error)
    ListByUser(ctx context.Context, toUserID uint64) ([]*repository.ReservationDetail, error)
    ListBySportVenue(ctx context.Context, venueID uint64) ([]*repository.ReservationDetail, error)
    ListBySportVenueAndUser(ctx context.Context, venueID, toUserID uint64) ([]*repository.ReservationDetail, error)
    SoftDelete(ctx context.Context, id uint64) error
    Delete(ctx context.Context, id uint64) error
}

// UserStore is the user lookup contract the reservation use cases
// need to resolve the acting administrator.
type UserStore interface {
    GetByID(ctx context.Context, id uint64) (model.User, error)
    GetByRole(ctx context.Context, role string) (model.User, error)
}

// EventPublisher pushes domain events to the message broker.
// Publishing is best effort: failures are logged and never abort the
// request that triggered them.
type EventPublisher interface {
    PublishReservationRequested(ctx context.Context, event queue.ReservationRequestedEvent) error
    PublishReservationConfirmed(ctx context.Context, event queue.ReservationConfirmedEvent) error
}

// ReservationInput carries the validated fields of a create or update
// request.  Handlers build it from the DTO after validation.
type ReservationInput struct {
    DateReservation string
    Hours           uint32
    HourInitial     string
    HourFinish      string
    SportsVenueID   uint64
}

// ReservationUseCases bundles every reservation operation.  Role and
// ownership scoping lives here; the store only knows filters.
type ReservationUseCases struct {
    reservations ReservationStore
    users        UserStore
    events       EventPublisher
}

// NewReservationUseCases constructs the reservation use cases.
// events may be nil when no broker is configured.
func NewReservationUseCases(reservations ReservationStore, users UserStore, events EventPublisher) *ReservationUseCases {
    return &ReservationUseCases{reservations: reservations, users: users, events: events}
}

// Create books a venue for the requester.  The system resolves the
// first ADMIN_ROLE user as the managing user of the record; a system
// without an administrator is a configuration error, not a client
// one.  The overlap guard runs inside the store's transaction.
func (uc *ReservationUseCases) Create(ctx context.Context, p Principal, in ReservationInput) (*Response, error) {
    admin, err := uc.users.GetByRole(ctx, model.AdminRole)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, apperr.InternalServer("no administrator account is configured")
        }
        return nil, apperr.InternalServer(err.Error())
    }

    res := &model.Reservation{
        Reference:       uuid.NewString(),
        DateReservation: in.DateReservation,
        Status:          model.StatusPending,
        Hours:           in.Hours,
        HourInitial:     in.HourInitial,
        HourFinish:      in.HourFinish,
        SportsVenueID:   in.SportsVenueID,
        ToUserID:        p.ID,
        UserID:          admin.ID,
    }

    detail, err := uc.reservations.Create(ctx, res)
    if err != nil {
        return nil, mapReservationWriteErr(err)
    }

    uc.publishRequested(ctx, detail)

    return &Response{
        Code:    201,
        Status:  "Created",
        Message: "reservation request submitted",
        Data:    detail,
    }, nil
}

// Find returns every reservation in the system.  The route is
// admin-only; the check is repeated here so the rule does not depend
// on transport wiring.
func (uc *ReservationUseCases) Find(ctx context.Context, p Principal) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    details, err := uc.reservations.List(ctx)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "reservation list", Data: details}, nil
}

// FindByUser returns the requester's own reservations.
func (uc *ReservationUseCases) FindByUser(ctx context.Context, p Principal) (*Response, error) {
    details, err := uc.reservations.ListByUser(ctx, p.ID)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "reservation list", Data: details}, nil
}

// FindByID returns a single reservation.  Administrators may fetch
// any record; regular users only their own, and a foreign record is
// reported as not found rather than forbidden.
func (uc *ReservationUseCases) FindByID(ctx context.Context, p Principal, id uint64) (*Response, error) {
    var detail *repository.ReservationDetail
    var err error
    if p.Role == model.AdminRole {
        detail, err = uc.reservations.GetByID(ctx, id)
    } else {
        detail, err = uc.reservations.GetByIDForUser(ctx, id, p.ID)
    }
    if err != nil {
        return nil, notFoundOr(err, "the reservation was not found")
    }
    return &Response{Code: 200, Status: "OK", Message: "reservation information", Data: detail}, nil
}

// FindBySportVenue lists reservations on a venue.  Administrators see
// every reservation; regular users only the ones they requested.
func (uc *ReservationUseCases) FindBySportVenue(ctx context.Context, p Principal, venueID uint64) (*Response, error) {
    var details []*repository.ReservationDetail
    var err error
    if p.Role == model.AdminRole {
        details, err = uc.reservations.ListBySportVenue(ctx, venueID)
    } else {
        details, err = uc.reservations.ListBySportVenueAndUser(ctx, venueID, p.ID)
    }
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "reservations scheduled on this sport venue", Data: details}, nil
}

// Update rewrites a reservation's slot and marks it confirmed.  The
// route is admin-only.  The overlap guard re-runs with the record's
// own prior version excluded, so keeping the same slot never
// conflicts with itself.
func (uc *ReservationUseCases) Update(ctx context.Context, p Principal, id uint64, in ReservationInput) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    if _, err := uc.reservations.GetByID(ctx, id); err != nil {
        return nil, notFoundOr(err, "the reservation does not exist")
    }

    res := &model.Reservation{
        DateReservation:    in.DateReservation,
        Status:             model.StatusConfirmed,
        Hours:              in.Hours,
        HourInitial:        in.HourInitial,
        HourFinish:         in.HourFinish,
        SportsVenueID:      in.SportsVenueID,
        ConfirmReservation: true,
    }
    detail, err := uc.reservations.Update(ctx, id, res)
    if err != nil {
        return nil, mapReservationWriteErr(err)
    }

    uc.publishConfirmed(ctx, detail)

    return &Response{Code: 200, Status: "OK", Message: "the reservation has been updated", Data: detail}, nil
}

// SoftDelete cancels a reservation.  The lookup is scoped to the
// requester, authorizing and checking existence in one query.
// Cancelling twice is rejected so the operation surfaces repeats
// instead of silently absorbing them.
func (uc *ReservationUseCases) SoftDelete(ctx context.Context, p Principal, id uint64) (*Response, error) {
    detail, err := uc.reservations.GetByIDForUser(ctx, id, p.ID)
    if err != nil {
        return nil, notFoundOr(err, "the reservation was not found")
    }
    if detail.Status == model.StatusCancelled {
        return nil, apperr.BadRequest("the reservation was already cancelled")
    }
    if err := uc.reservations.SoftDelete(ctx, id); err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "the reservation has been cancelled"}, nil
}

// Delete permanently removes a reservation.  Admin-only, global
// lookup with no ownership scoping.
func (uc *ReservationUseCases) Delete(ctx context.Context, p Principal, id uint64) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    if _, err := uc.reservations.GetByID(ctx, id); err != nil {
        return nil, notFoundOr(err, "the reservation was not found")
    }
    if err := uc.reservations.Delete(ctx, id); err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "the reservation has been deleted"}, nil
}

// mapReservationWriteErr translates store failures on create/update
// into API error kinds.  A missing venue row (the lock query found
// nothing) is a NotFound; an overlap is a Conflict; a malformed or
// inverted hour pair on the candidate is a BadRequest.  A malformed
// stored row stays internal: the table is suspect, not the client.
func mapReservationWriteErr(err error) error {
    switch {
    case errors.Is(err, sql.ErrNoRows):
        return apperr.NotFound("the sport venue was not found")
    case errors.Is(err, repository.ErrScheduleConflict):
        return apperr.Conflict("the sport venue already has a reservation in this time slot")
    case errors.Is(err, repository.ErrInvalidInterval):
        return apperr.BadRequest("hour_initial and hour_finish must form a valid interval")
    default:
        if app := apperr.From(err); app != nil {
            return app
        }
        return apperr.InternalServer(err.Error())
    }
}

func (uc *ReservationUseCases) publishRequested(ctx context.Context, d *repository.ReservationDetail) {
    if uc.events == nil {
        return
    }
    event := queue.ReservationRequestedEvent{
        ReservationID: d.ID,
        Reference:     d.Reference,
        VenueName:     d.SportsVenue.Name,
        VenueLocation: d.SportsVenue.Venue,
        Date:          d.DateReservation,
        HourInitial:   d.HourInitial,
        HourFinish:    d.HourFinish,
        RequesterName: d.ToUser.Name + " " + d.ToUser.Lastname,
        RequesterMail: d.ToUser.Email,
        RequestedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if err := uc.events.PublishReservationRequested(ctx, event); err != nil {
        logger.Warn("publish reservation.requested failed", zap.Uint64("reservation_id", d.ID), zap.Error(err))
    }
}

func (uc *ReservationUseCases) publishConfirmed(ctx context.Context, d *repository.ReservationDetail) {
    if uc.events == nil {
        return
    }
    event := queue.ReservationConfirmedEvent{
        ReservationID: d.ID,
        Reference:     d.Reference,
        VenueName:     d.SportsVenue.Name,
        VenueLocation: d.SportsVenue.Venue,
        Date:          d.DateReservation,
        HourInitial:   d.HourInitial,
        HourFinish:    d.HourFinish,
        RequesterName: d.ToUser.Name + " " + d.ToUser.Lastname,
        RequesterMail: d.ToUser.Email,
        ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if err := uc.events.PublishReservationConfirmed(ctx, event); err != nil {
        logger.Warn("publish reservation.confirmed failed", zap.Uint64("reservation_id", d.ID), zap.Error(err))
    }
}
