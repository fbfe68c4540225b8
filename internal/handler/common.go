package handler // handler defines the HTTP handlers for the admin API

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/supabase"
)

// contextWithTimeout caps handler-initiated upstream work.  The gateway has
// its own 15s transport timeout; this bound covers multi-call flows.
func contextWithTimeout(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), 15*time.Second)
}

// fail writes the resource-endpoint error envelope.  The {success, message}
// shape is what the admin UI parses; auth endpoints use their own shape.
func fail(c echo.Context, status int, msg string) error {
    return c.JSON(status, echo.Map{"success": false, "message": msg})
}

// upstreamFail maps a gateway error onto the response.  Upstream statuses in
// the 4xx/5xx range pass through where sensible; everything else (network
// errors, decode errors) becomes a 500.  The upstream body is logged by the
// caller, never echoed to the browser.
func upstreamFail(c echo.Context, err error, msg string) error {
    status := http.StatusInternalServerError
    var ue *supabase.UpstreamError
    if errors.As(err, &ue) && ue.Status >= http.StatusBadRequest {
        status = ue.Status
    }
    c.Logger().Errorf("%s: %v", msg, err)
    return fail(c, status, msg)
}

// nowISO returns the current UTC time in the ISO-8601 form the upstream
// schema stores in its *_AT columns.
func nowISO() string {
    return time.Now().UTC().Format(time.RFC3339)
}

// Health is the liveness endpoint for load balancers and monitors.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}
