package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/require"

    "github.com/foodbao/admin-api/internal/config"
)

// testCfg builds the handler configuration pointed at a fake upstream.  The
// minimum bcrypt cost keeps create-flow tests fast.
func testCfg(upstreamURL string) config.Config {
    return config.Config{
        Env:         "test",
        Port:        "8080",
        SupabaseURL: upstreamURL,
        SupabaseKey: "test-service-key",
        JWTSecret:   "handler-test-secret",
        TokenTTLMin: 60,
        BcryptCost:  4,
    }
}

// newCtx builds an Echo context carrying an optional JSON body and returns
// it together with the response recorder.
func newCtx(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    var rdr *strings.Reader
    if body != nil {
        buf, err := json.Marshal(body)
        require.NoError(t, err)
        rdr = strings.NewReader(string(buf))
    } else {
        rdr = strings.NewReader("")
    }
    req := httptest.NewRequest(method, target, rdr)
    if body != nil {
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    return echo.New().NewContext(req, rec), rec
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
    t.Helper()
    var out map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
    return out
}

// fakeUpstream is an httptest server standing in for the database service,
// with a counter so tests can assert no calls happened on early validation
// failures.
type fakeUpstream struct {
    *httptest.Server
    calls int
}

func newFakeUpstream(t *testing.T, h http.HandlerFunc) *fakeUpstream {
    t.Helper()
    f := &fakeUpstream{}
    f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        f.calls++
        h(w, r)
    }))
    t.Cleanup(f.Server.Close)
    return f
}
