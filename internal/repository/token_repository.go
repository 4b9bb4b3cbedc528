package repository

import (
    "context"
    "database/sql"
    "time"
)

// TokenRepo stores account activation tokens.  Only the SHA-256 hash
// of a token is persisted; the raw value travels once inside the
// activation email.  Tokens are single use and expire.
type TokenRepo struct {
    db *sql.DB
}

// NewTokenRepo returns a new TokenRepo bound to the given database.
func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{db: db} }

// Store saves a hashed activation token for the user.
func (r *TokenRepo) Store(ctx context.Context, userID uint64, tokenHash string, expiresAt time.Time) error {
    _, err := r.db.ExecContext(ctx,
        `INSERT INTO activation_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)`,
        userID, tokenHash, expiresAt.UTC())
    return err
}

// Consume validates a hashed token and marks it used in a single
// atomic update.  It returns the owning user's ID.  sql.ErrNoRows is
// returned when the token does not exist, has expired or was already
// consumed.
func (r *TokenRepo) Consume(ctx context.Context, tokenHash string) (uint64, error) {
    res, err := r.db.ExecContext(ctx,
        `UPDATE activation_tokens SET used_at = NOW() WHERE token_hash = ? AND used_at IS NULL AND expires_at > NOW()`,
        tokenHash)
    if err != nil {
        return 0, err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return 0, err
    }
    if n == 0 {
        return 0, sql.ErrNoRows
    }
    var userID uint64
    err = r.db.QueryRowContext(ctx,
        `SELECT user_id FROM activation_tokens WHERE token_hash = ? LIMIT 1`,
        tokenHash).Scan(&userID)
    if err != nil {
        return 0, err
    }
    return userID, nil
}

// DeleteExpired removes tokens past their expiry.  Intended for a
// periodic cleanup invocation; missing rows are not an error.
func (r *TokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
    res, err := r.db.ExecContext(ctx,
        `DELETE FROM activation_tokens WHERE expires_at <= NOW() OR used_at IS NOT NULL`)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}
