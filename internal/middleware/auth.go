package middleware // middleware provides reusable cross-cutting request processing

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/utils"
)

// claimsKey is the context key under which verified session claims live.
const claimsKey = "session_claims"

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects its verified claims into the request context.  A missing or
// unparseable Authorization header fails closed with 401 before any token
// work happens; a bad signature or expired token also answers 401.  Handlers
// downstream read the identity via CurrentClaims.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")
            sc, err := utils.ParseSessionToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized", "message": err.Error()})
            }
            c.Set(claimsKey, sc)
            return next(c)
        }
    }
}

// RequireRole returns a middleware that only lets callers through when the
// verified role is a member of the allowed set.  Comparison is
// case-insensitive because stored roles mix casings.  On a role miss the
// wrapped handler is never invoked.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[model.NormalizeRole(r)] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            sc, ok := CurrentClaims(c)
            if !ok || !allowed[model.NormalizeRole(sc.Role)] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "Permission denied"})
            }
            return next(c)
        }
    }
}

// CurrentClaims returns the verified session claims placed in the context by
// JWTAuth, or ok=false when the request is unauthenticated.
func CurrentClaims(c echo.Context) (utils.SessionClaims, bool) {
    sc, ok := c.Get(claimsKey).(utils.SessionClaims)
    return sc, ok
}
