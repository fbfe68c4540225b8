package handler

import (
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/foodbao/admin-api/internal/config"
    "github.com/foodbao/admin-api/internal/supabase"
)

func TestCredentialsExposeOnlyPublicPieces(t *testing.T) {
    cfg := testCfg("http://unused")
    cfg.CloudName = "foodbao-media"
    cfg.UploadPreset = "vendor-uploads"
    h := NewCloudinaryHandler(cfg, nil)

    c, rec := newCtx(t, http.MethodGet, "/api/cloudinary-credentials", nil)
    require.NoError(t, h.Credentials(c))
    require.Equal(t, http.StatusOK, rec.Code)

    body := decodeBody(t, rec)
    assert.Equal(t, "foodbao-media", body["cloud_name"])
    assert.Equal(t, "vendor-uploads", body["upload_preset"])
    assert.NotContains(t, body, "api_secret")
}

func TestCredentialsMissingConfiguration(t *testing.T) {
    h := NewCloudinaryHandler(config.Config{}, nil)
    c, rec := newCtx(t, http.MethodGet, "/api/cloudinary-credentials", nil)
    require.NoError(t, h.Credentials(c))
    assert.Equal(t, http.StatusInternalServerError, rec.Code)
    assert.Contains(t, rec.Body.String(), "Missing Cloudinary configuration")
}

func TestCreateCloudinaryAccountConflict(t *testing.T) {
    up := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "eq.alice", r.URL.Query().Get("username"))
        _, _ = w.Write([]byte(`[{"id":1}]`))
    })
    cfg := testCfg(up.URL)
    h := NewCloudinaryHandler(cfg, supabase.New(cfg.SupabaseURL, cfg.SupabaseKey))

    c, rec := newCtx(t, http.MethodPost, "/api/cloudinary/accounts", map[string]any{
        "username": "alice", "cloud_name": "cn",
    })
    require.NoError(t, h.CreateAccount(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListAccountsRequiresSomeUsername(t *testing.T) {
    h := NewCloudinaryHandler(testCfg("http://unused"), nil)
    c, rec := newCtx(t, http.MethodGet, "/api/cloudinary/accounts", nil)
    require.NoError(t, h.ListAccounts(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}
