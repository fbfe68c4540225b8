package utils

import (
    "crypto/subtle"
    "strings"

    "golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
    b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
    if err != nil {
        return "", err
    }
    return string(b), nil
}

// VerifyPassword compares a stored credential against a plain password.
// New rows store bcrypt hashes; legacy rows in the userfile table hold the
// password verbatim in PASSWORD_HASH, so anything that does not look like a
// bcrypt hash falls back to a constant-time equality check.
func VerifyPassword(stored, plain string) bool {
    if strings.HasPrefix(stored, "$2") {
        return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
    }
    return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}
