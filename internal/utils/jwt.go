package utils // package utils provides helpers for session tokens and password handling

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrTokenInvalid covers every verification failure: bad signature, wrong
// algorithm, malformed token or expiry.  Callers treat all of them as one
// unauthorized condition and do not need to distinguish.
var ErrTokenInvalid = errors.New("invalid or expired token")

// SessionClaims is the identity a signed session token carries.  The token
// is the sole session state: nothing is stored server-side and a token is
// only ever invalidated by its own expiry.
type SessionClaims struct {
    UserID   int64
    Username string
    Role     string
    Email    string
}

// NewSessionToken builds and signs an HS256 JWT for the given claims.  The
// claim names (userId, username, role, email) are part of the contract with
// the admin UI, which keeps a denormalized copy in browser storage.  Returns
// the signed token and its expiry.
func NewSessionToken(secret string, sc SessionClaims, ttl time.Duration) (string, time.Time, error) {
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims := jwt.MapClaims{
        "userId":   sc.UserID,
        "username": sc.Username,
        "role":     sc.Role,
        "email":    sc.Email,
        "exp":      exp.Unix(),
        "iat":      now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return "", time.Time{}, err
    }
    return signed, exp, nil
}

// ParseSessionToken verifies the signature and expiry of a session token and
// returns its claims.  Tokens signed with anything but HMAC are rejected.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return SessionClaims{}, ErrTokenInvalid
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return SessionClaims{}, ErrTokenInvalid
    }
    sc := SessionClaims{}
    if v, ok := claims["userId"].(float64); ok {
        sc.UserID = int64(v)
    }
    sc.Username, _ = claims["username"].(string)
    sc.Role, _ = claims["role"].(string)
    sc.Email, _ = claims["email"].(string)
    return sc, nil
}
