package repository

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/timeslot"
)

// ReservationRepo provides CRUD operations for reservations and runs
// the overlap guard on every write.  Results are returned with the
// referenced venue and requester inlined via JOINs so callers never
// perform a second round trip for population.
//
// The check-then-write sequence on create and update is serialized
// per venue: the transaction first takes a row lock on the venue
// (SELECT ... FOR UPDATE), so two concurrent writers for the same
// venue cannot both pass the overlap scan before either commits.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// VenueRef is the populated venue portion of a reservation detail.
type VenueRef struct {
    ID        uint64 `json:"id"`
    Name      string `json:"name"`
    Venue     string `json:"venue"`
    Available bool   `json:"available"`
}

// UserRef is the populated requester portion of a reservation detail.
// The password hash is deliberately absent.
type UserRef struct {
    ID       uint64 `json:"id"`
    Name     string `json:"name"`
    Lastname string `json:"lastname"`
    Phone    string `json:"phone"`
    Email    string `json:"email"`
}

// ReservationDetail is a reservation with its venue and requester
// resolved.  It is the shape returned to clients by every query and
// write operation on this repository.
type ReservationDetail struct {
    ID                 uint64    `json:"id"`
    Reference          string    `json:"reference"`
    DateReservation    string    `json:"date_reservation"`
    Status             string    `json:"status"`
    Hours              uint32    `json:"hours"`
    HourInitial        string    `json:"hour_initial"`
    HourFinish         string    `json:"hour_finish"`
    ConfirmReservation bool      `json:"confirm_reservation"`
    SportsVenue        VenueRef  `json:"sports_venue"`
    ToUser             UserRef   `json:"to_user"`
    UserID             uint64    `json:"user_id"`
    CreatedAt          time.Time `json:"created_at"`
    UpdatedAt          time.Time `json:"updated_at"`
}

// detailQuery selects a reservation row joined with its venue and
// requester.  Every reader below appends its own WHERE clause.
const detailQuery = `SELECT r.id, r.reference, r.date_reservation, r.status, r.hours,
           r.hour_initial, r.hour_finish, r.confirm_reservation, r.user_id,
           r.created_at, r.updated_at,
           v.id, v.name, v.venue, v.available,
           u.id, u.name, u.lastname, u.phone, u.email
    FROM reservations r
    JOIN sport_venues v ON v.id = r.sports_venue_id
    JOIN users u ON u.id = r.to_user_id`

func scanDetail(row interface{ Scan(...any) error }) (*ReservationDetail, error) {
    var d ReservationDetail
    var date time.Time
    err := row.Scan(
        &d.ID, &d.Reference, &date, &d.Status, &d.Hours,
        &d.HourInitial, &d.HourFinish, &d.ConfirmReservation, &d.UserID,
        &d.CreatedAt, &d.UpdatedAt,
        &d.SportsVenue.ID, &d.SportsVenue.Name, &d.SportsVenue.Venue, &d.SportsVenue.Available,
        &d.ToUser.ID, &d.ToUser.Name, &d.ToUser.Lastname, &d.ToUser.Phone, &d.ToUser.Email,
    )
    if err != nil {
        return nil, err
    }
    d.DateReservation = date.Format("2006-01-02")
    return &d, nil
}

// Create inserts a new reservation after running the overlap guard
// inside a transaction.  sql.ErrNoRows is returned when the venue
// does not exist and ErrScheduleConflict when the requested interval
// overlaps an existing reservation on the same venue and date.  On
// success the fully populated detail is returned.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) (*ReservationDetail, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    defer tx.Rollback()

    if err := lockVenueTx(ctx, tx, res.SportsVenueID); err != nil {
        return nil, err
    }
    if err := checkOverlapTx(ctx, tx, res, 0); err != nil {
        return nil, err
    }

    result, err := tx.ExecContext(ctx,
        `INSERT INTO reservations (reference, date_reservation, status, hours, hour_initial, hour_finish,
                                   sports_venue_id, confirm_reservation, to_user_id, user_id)
         VALUES (?,?,?,?,?,?,?,?,?,?)`,
        res.Reference, res.DateReservation, res.Status, res.Hours, res.HourInitial, res.HourFinish,
        res.SportsVenueID, res.ConfirmReservation, res.ToUserID, res.UserID)
    if err != nil {
        return nil, err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return nil, err
    }
    res.ID = uint64(id)

    detail, err := scanDetail(tx.QueryRowContext(ctx, detailQuery+` WHERE r.id = ?`, res.ID))
    if err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    return detail, nil
}

// Update rewrites the schedulable fields of a reservation and
// re-runs the overlap guard, excluding the reservation's own prior
// record so an unchanged or shifted slot does not conflict with
// itself.  The updated detail is returned.
func (r *ReservationRepo) Update(ctx context.Context, id uint64, res *model.Reservation) (*ReservationDetail, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    defer tx.Rollback()

    if err := lockVenueTx(ctx, tx, res.SportsVenueID); err != nil {
        return nil, err
    }
    if err := checkOverlapTx(ctx, tx, res, id); err != nil {
        return nil, err
    }

    _, err = tx.ExecContext(ctx,
        `UPDATE reservations
         SET date_reservation = ?, status = ?, hours = ?, hour_initial = ?, hour_finish = ?,
             sports_venue_id = ?, confirm_reservation = ?
         WHERE id = ?`,
        res.DateReservation, res.Status, res.Hours, res.HourInitial, res.HourFinish,
        res.SportsVenueID, res.ConfirmReservation, id)
    if err != nil {
        return nil, err
    }

    detail, err := scanDetail(tx.QueryRowContext(ctx, detailQuery+` WHERE r.id = ?`, id))
    if err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    return detail, nil
}

// lockVenueTx takes a row lock on the venue being booked.  The lock
// is held until the surrounding transaction commits, serializing all
// reservation writes for that venue.
func lockVenueTx(ctx context.Context, tx *sql.Tx, venueID uint64) error {
    var id uint64
    return tx.QueryRowContext(ctx,
        `SELECT id FROM sport_venues WHERE id = ? FOR UPDATE`, venueID).Scan(&id)
}

// checkOverlapTx fetches every reservation sharing the candidate's
// venue and date, excluding excludeID when updating, and compares
// half-open minute intervals.  A malformed candidate hour pair is an
// ErrInvalidInterval (client fault); a malformed stored row fails the
// write as a plain error since the table itself is suspect.
func checkOverlapTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, excludeID uint64) error {
    candidate, err := timeslot.ParseInterval(res.HourInitial, res.HourFinish)
    if err != nil {
        return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
    }

    rows, err := tx.QueryContext(ctx,
        `SELECT id, hour_initial, hour_finish
         FROM reservations
         WHERE sports_venue_id = ? AND date_reservation = ? AND id <> ?`,
        res.SportsVenueID, res.DateReservation, excludeID)
    if err != nil {
        return err
    }
    defer rows.Close()

    for rows.Next() {
        var id uint64
        var start, end string
        if err := rows.Scan(&id, &start, &end); err != nil {
            return err
        }
        existing, err := timeslot.ParseInterval(start, end)
        if err != nil {
            return fmt.Errorf("reservation %d: %w", id, err)
        }
        if candidate.Overlaps(existing) {
            return ErrScheduleConflict
        }
    }
    return rows.Err()
}

// GetByID returns a reservation by id regardless of owner.
// sql.ErrNoRows is returned when it does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*ReservationDetail, error) {
    return scanDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE r.id = ?`, id))
}

// GetByIDForUser returns a reservation only when it belongs to the
// given requester.  Restricting the query itself both authorizes and
// checks existence in one round trip; a reservation owned by someone
// else is indistinguishable from a missing one.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, id, toUserID uint64) (*ReservationDetail, error) {
    return scanDetail(r.db.QueryRowContext(ctx,
        detailQuery+` WHERE r.id = ? AND r.to_user_id = ?`, id, toUserID))
}

// List returns all reservations, newest first.
func (r *ReservationRepo) List(ctx context.Context) ([]*ReservationDetail, error) {
    return r.listDetails(ctx, detailQuery+` ORDER BY r.created_at DESC`)
}

// ListByUser returns all reservations requested by the given user,
// newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, toUserID uint64) ([]*ReservationDetail, error) {
    return r.listDetails(ctx,
        detailQuery+` WHERE r.to_user_id = ? ORDER BY r.created_at DESC`, toUserID)
}

// ListBySportVenue returns all reservations on a venue, newest first.
func (r *ReservationRepo) ListBySportVenue(ctx context.Context, venueID uint64) ([]*ReservationDetail, error) {
    return r.listDetails(ctx,
        detailQuery+` WHERE r.sports_venue_id = ? ORDER BY r.created_at DESC`, venueID)
}

// ListBySportVenueAndUser returns the given requester's reservations
// on a venue, newest first.
func (r *ReservationRepo) ListBySportVenueAndUser(ctx context.Context, venueID, toUserID uint64) ([]*ReservationDetail, error) {
    return r.listDetails(ctx,
        detailQuery+` WHERE r.sports_venue_id = ? AND r.to_user_id = ? ORDER BY r.created_at DESC`,
        venueID, toUserID)
}

func (r *ReservationRepo) listDetails(ctx context.Context, query string, args ...any) ([]*ReservationDetail, error) {
    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    details := make([]*ReservationDetail, 0)
    for rows.Next() {
        d, err := scanDetail(rows)
        if err != nil {
            return nil, err
        }
        details = append(details, d)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return details, nil
}

// SoftDelete cancels a reservation: status becomes cancelled and the
// confirmation flag is cleared.  The row is never removed.
func (r *ReservationRepo) SoftDelete(ctx context.Context, id uint64) error {
    _, err := r.db.ExecContext(ctx,
        `UPDATE reservations SET status = ?, confirm_reservation = 0 WHERE id = ?`,
        model.StatusCancelled, id)
    return err
}

// Delete permanently removes a reservation.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
    _, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
    return err
}
