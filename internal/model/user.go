package model

import "time"

// Role values accepted by the system.  They control access to the
// venue catalog and the reservation endpoints.  Regular users book
// venues; administrators manage them and confirm reservations.
const (
    AdminRole = "ADMIN_ROLE"
    UserRole  = "USER_ROLE"
)

// ValidRole reports whether s is one of the known role constants.
func ValidRole(s string) bool {
    return s == AdminRole || s == UserRole
}

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The password hash is never serialized to clients;
// handlers define separate response types with JSON tags.
//
// Fields:
//  ID            – primary key identifier of the user.
//  Name          – given name.
//  Lastname      – family name.
//  Phone         – unique phone number.
//  Email         – unique email address.
//  PasswordHash  – bcrypt hashed password.
//  AccountActive – whether the account has been activated via the
//                  emailed token.  Inactive accounts cannot log in.
//  Role          – ADMIN_ROLE or USER_ROLE.
//  CreatedAt     – timestamp of creation.
//  UpdatedAt     – timestamp of last update.
type User struct {
    ID            uint64    // users.id
    Name          string    // users.name
    Lastname      string    // users.lastname
    Phone         string    // users.phone
    Email         string    // users.email
    PasswordHash  string    // users.password_hash
    AccountActive bool      // users.account_active
    Role          string    // users.role
    CreatedAt     time.Time // users.created_at
    UpdatedAt     time.Time // users.updated_at
}

// ActivationToken models an entry in the `activation_tokens` table.
// Each token belongs to a user and is single use.  The plain token
// is not stored; only its SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  UsedAt    – when the token was consumed (null while unused).
//  CreatedAt – timestamp of creation.
type ActivationToken struct {
    ID        uint64     // activation_tokens.id
    UserID    uint64     // activation_tokens.user_id
    TokenHash string     // activation_tokens.token_hash
    ExpiresAt time.Time  // activation_tokens.expires_at
    UsedAt    *time.Time // activation_tokens.used_at (nullable)
    CreatedAt time.Time  // activation_tokens.created_at
}
