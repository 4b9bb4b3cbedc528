package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/mvalenciah/sport-venue-reservation/internal/model"
)

// SportVenueRepo provides CRUD operations for sport venues.  The
// (name, venue) pair is unique; the database index backs the check
// performed by the create use case so concurrent inserts cannot slip
// past it.
type SportVenueRepo struct {
    db *sql.DB
}

// NewSportVenueRepo returns a new SportVenueRepo bound to the given database.
func NewSportVenueRepo(db *sql.DB) *SportVenueRepo { return &SportVenueRepo{db: db} }

const venueColumns = `id, name, venue, available, user_id, created_at, updated_at`

func scanVenue(row interface{ Scan(...any) error }) (model.SportVenue, error) {
    var v model.SportVenue
    err := row.Scan(&v.ID, &v.Name, &v.Venue, &v.Available, &v.UserID, &v.CreatedAt, &v.UpdatedAt)
    return v, err
}

// Create inserts a new sport venue and returns its generated ID.
// Duplicate (name, venue) pairs surface as ErrVenueExists.
func (r *SportVenueRepo) Create(ctx context.Context, v model.SportVenue) (uint64, error) {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO sport_venues (name, venue, available, user_id) VALUES (?,?,?,?)`,
        v.Name, v.Venue, v.Available, v.UserID)
    if err != nil {
        return 0, mapVenueDuplicate(err)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByID fetches a venue by id.  sql.ErrNoRows is returned when the
// venue does not exist.
func (r *SportVenueRepo) GetByID(ctx context.Context, id uint64) (model.SportVenue, error) {
    return scanVenue(r.db.QueryRowContext(ctx,
        `SELECT `+venueColumns+` FROM sport_venues WHERE id = ? LIMIT 1`, id))
}

// GetByNameAndVenue fetches a venue by its unique (name, venue) pair.
func (r *SportVenueRepo) GetByNameAndVenue(ctx context.Context, name, venue string) (model.SportVenue, error) {
    return scanVenue(r.db.QueryRowContext(ctx,
        `SELECT `+venueColumns+` FROM sport_venues WHERE name = ? AND venue = ? LIMIT 1`,
        name, venue))
}

// List returns all venues ordered by name.
func (r *SportVenueRepo) List(ctx context.Context) ([]model.SportVenue, error) {
    return r.list(ctx, `SELECT `+venueColumns+` FROM sport_venues ORDER BY name, venue`)
}

// ListByAvailable returns venues filtered by their availability flag.
func (r *SportVenueRepo) ListByAvailable(ctx context.Context, available bool) ([]model.SportVenue, error) {
    return r.list(ctx,
        `SELECT `+venueColumns+` FROM sport_venues WHERE available = ? ORDER BY name, venue`,
        available)
}

func (r *SportVenueRepo) list(ctx context.Context, query string, args ...any) ([]model.SportVenue, error) {
    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    venues := make([]model.SportVenue, 0)
    for rows.Next() {
        v, err := scanVenue(rows)
        if err != nil {
            return nil, err
        }
        venues = append(venues, v)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return venues, nil
}

// Update rewrites the mutable fields of a venue.
func (r *SportVenueRepo) Update(ctx context.Context, v model.SportVenue) error {
    _, err := r.db.ExecContext(ctx,
        `UPDATE sport_venues SET name = ?, venue = ?, available = ? WHERE id = ?`,
        v.Name, v.Venue, v.Available, v.ID)
    return mapVenueDuplicate(err)
}

// Delete permanently removes a venue.
func (r *SportVenueRepo) Delete(ctx context.Context, id uint64) error {
    _, err := r.db.ExecContext(ctx, `DELETE FROM sport_venues WHERE id = ?`, id)
    return err
}

func mapVenueDuplicate(err error) error {
    if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
        return ErrVenueExists
    }
    return err
}
