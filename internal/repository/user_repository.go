package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/mvalenciah/sport-venue-reservation/internal/model"
)

// UserRepo provides CRUD operations for application users.  Emails
// are normalized to lower case before storage and lookup.  Uniqueness
// of email and phone is enforced by the database; duplicate-key
// failures surface as ErrEmailExists / ErrPhoneExists.
type UserRepo struct {
    db *sql.DB
}

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, name, lastname, phone, email, password_hash, account_active, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
    var u model.User
    err := row.Scan(&u.ID, &u.Name, &u.Lastname, &u.Phone, &u.Email,
        &u.PasswordHash, &u.AccountActive, &u.Role, &u.CreatedAt, &u.UpdatedAt)
    return u, err
}

// Create inserts a new user and returns its generated ID.  The
// password must already be hashed by the caller.
func (r *UserRepo) Create(ctx context.Context, u model.User) (uint64, error) {
    u.Email = strings.ToLower(strings.TrimSpace(u.Email))
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO users (name, lastname, phone, email, password_hash, account_active, role) VALUES (?,?,?,?,?,?,?)`,
        u.Name, u.Lastname, u.Phone, u.Email, u.PasswordHash, u.AccountActive, u.Role)
    if err != nil {
        return 0, mapUserDuplicate(err)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByID fetches a user by id.  sql.ErrNoRows is returned when the
// user does not exist.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
    return scanUser(r.db.QueryRowContext(ctx,
        `SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id))
}

// GetByEmail fetches a user by normalized email, including the
// password hash for credential verification.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    return scanUser(r.db.QueryRowContext(ctx,
        `SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email))
}

// GetByRole returns the first user carrying the given role, ordered
// by id for determinism.  Reservation creation uses this to resolve
// the acting administrator.
func (r *UserRepo) GetByRole(ctx context.Context, role string) (model.User, error) {
    return scanUser(r.db.QueryRowContext(ctx,
        `SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY id LIMIT 1`, role))
}

// Update rewrites the mutable profile fields of a user.
func (r *UserRepo) Update(ctx context.Context, u model.User) error {
    u.Email = strings.ToLower(strings.TrimSpace(u.Email))
    _, err := r.db.ExecContext(ctx,
        `UPDATE users SET name = ?, lastname = ?, phone = ?, email = ? WHERE id = ?`,
        u.Name, u.Lastname, u.Phone, u.Email, u.ID)
    return mapUserDuplicate(err)
}

// Activate marks the user's account as active.
func (r *UserRepo) Activate(ctx context.Context, id uint64) error {
    _, err := r.db.ExecContext(ctx,
        `UPDATE users SET account_active = 1 WHERE id = ?`, id)
    return err
}

// Delete permanently removes a user.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
    _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
    return err
}

// mapUserDuplicate converts MySQL duplicate-key failures (error 1062)
// on the users table into the matching sentinel, keyed off the index
// name embedded in the driver message.
func mapUserDuplicate(err error) error {
    if err == nil {
        return nil
    }
    msg := strings.ToLower(err.Error())
    if !strings.Contains(msg, "1062") {
        return err
    }
    if strings.Contains(msg, "uq_users_phone") {
        return ErrPhoneExists
    }
    return ErrEmailExists
}
