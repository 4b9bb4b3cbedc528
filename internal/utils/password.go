package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain password with bcrypt.  A cost outside
// the range bcrypt accepts falls back to the library default so a
// misconfigured BCRYPT_COST cannot fail every sign up.
func HashPassword(plain string, cost int) (string, error) {
    if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
        cost = bcrypt.DefaultCost
    }
    b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
    if err != nil {
        return "", err
    }
    return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt
// hash.  The comparison is constant time inside bcrypt itself.
func VerifyPassword(hash, plain string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
