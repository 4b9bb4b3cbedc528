package utils

import (
    "crypto/rand"
    "crypto/sha256"
    "encoding/hex"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed JWT access token along with its expiry.
// Access tokens are short lived and carried in the Authorization
// header on protected endpoints.
type AccessToken struct {
    Token string
    Exp   time.Time
}

// ActivationToken is the single-use token mailed to a new account.
// The Raw field is what goes in the activation link; only the
// SHA-256 hash of it is stored in the database.
type ActivationToken struct {
    Raw string
    Exp time.Time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  The
// claims are subject (sub), role, expiration (exp) and issued at
// (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// NewActivationToken returns a cryptographically secure random token
// and its expiration time.  ttlHours controls how long the account
// activation link stays valid.
func NewActivationToken(ttlHours int) (ActivationToken, error) {
    raw, err := randomHex(32) // 32 bytes -> 64 hex chars
    if err != nil {
        return ActivationToken{}, err
    }
    return ActivationToken{
        Raw: raw,
        Exp: time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour),
    }, nil
}

// HashTokenRaw returns the SHA-256 hash of a raw token as a hex
// string.  Storing only the hash keeps stolen database entries from
// being replayed as activation links.
func HashTokenRaw(raw string) string {
    sum := sha256.Sum256([]byte(raw))
    return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
