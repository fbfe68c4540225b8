package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/utils"
)

const testSecret = "middleware-test-secret"

func bearerFor(t *testing.T, sc utils.SessionClaims) string {
    t.Helper()
    token, _, err := utils.NewSessionToken(testSecret, sc, time.Hour)
    require.NoError(t, err)
    return "Bearer " + token
}

func runRequest(authorization string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
    if authorization != "" {
        req.Header.Set("Authorization", authorization)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    invoked := false
    h := echo.HandlerFunc(func(c echo.Context) error {
        invoked = true
        return c.NoContent(http.StatusOK)
    })
    for i := len(mws) - 1; i >= 0; i-- {
        h = mws[i](h)
    }
    _ = h(c)
    return rec, invoked
}

func TestJWTAuthMissingToken(t *testing.T) {
    rec, invoked := runRequest("", JWTAuth(testSecret))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "Authentication required")
    assert.False(t, invoked)
}

func TestJWTAuthBadToken(t *testing.T) {
    rec, invoked := runRequest("Bearer nope", JWTAuth(testSecret))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "Unauthorized")
    assert.False(t, invoked)
}

func TestJWTAuthValidTokenInjectsClaims(t *testing.T) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    req.Header.Set("Authorization", bearerFor(t, utils.SessionClaims{UserID: 5, Username: "ALICE", Role: "client"}))
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    err := JWTAuth(testSecret)(func(c echo.Context) error {
        sc, ok := CurrentClaims(c)
        require.True(t, ok)
        assert.Equal(t, int64(5), sc.UserID)
        assert.Equal(t, "ALICE", sc.Username)
        return c.NoContent(http.StatusOK)
    })(c)
    require.NoError(t, err)
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleDeniesOtherRoles(t *testing.T) {
    auth := bearerFor(t, utils.SessionClaims{UserID: 2, Username: "BOB", Role: "USER"})
    rec, invoked := runRequest(auth, JWTAuth(testSecret), RequireRole(model.RoleAdmin))
    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.Contains(t, rec.Body.String(), "Permission denied")
    assert.False(t, invoked)
}

// Stored roles mix casings, so a lower-case "admin" claim must satisfy an
// ADMIN requirement.
func TestRequireRoleCaseInsensitive(t *testing.T) {
    auth := bearerFor(t, utils.SessionClaims{UserID: 1, Username: "VINCENT423", Role: "admin"})
    rec, invoked := runRequest(auth, JWTAuth(testSecret), RequireRole(model.RoleAdmin, model.RoleClient))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.True(t, invoked)
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
    rec, invoked := runRequest("", RequireRole(model.RoleAdmin))
    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.False(t, invoked)
}
