package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/config"
    "github.com/foodbao/admin-api/internal/middleware"
    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/supabase"
)

// CloudinaryHandler serves the image-hosting endpoints: the public upload
// credentials and the per-username account rows.
type CloudinaryHandler struct {
    Cfg config.Config
    DB  *supabase.Client
}

func NewCloudinaryHandler(cfg config.Config, db *supabase.Client) *CloudinaryHandler {
    return &CloudinaryHandler{Cfg: cfg, DB: db}
}

// Credentials handles GET /api/cloudinary-credentials.  Only the public
// pieces are exposed; the cloud name missing from the environment is a
// configuration error, not an upstream one.
func (h *CloudinaryHandler) Credentials(c echo.Context) error {
    if h.Cfg.CloudName == "" {
        return fail(c, http.StatusInternalServerError, "Missing Cloudinary configuration")
    }
    return c.JSON(http.StatusOK, echo.Map{
        "cloud_name":    h.Cfg.CloudName,
        "upload_preset": h.Cfg.UploadPreset,
    })
}

// ListAccounts handles GET /api/cloudinary/accounts.  Without an explicit
// ?username= the caller's own accounts are returned.
func (h *CloudinaryHandler) ListAccounts(c echo.Context) error {
    username := strings.TrimSpace(c.QueryParam("username"))
    if username == "" {
        if sc, ok := middleware.CurrentClaims(c); ok {
            username = sc.Username
        }
    }
    if username == "" {
        return fail(c, http.StatusBadRequest, "Username is required")
    }
    var rows []model.CloudinaryAccount
    if _, err := h.DB.Select(c.Request().Context(), "cloudinaryacc",
        supabase.Query{}.Where(supabase.Eq("username", username)), &rows); err != nil {
        return upstreamFail(c, err, "Error fetching cloudinary accounts")
    }
    return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// CreateAccount handles POST /api/cloudinary/accounts.  One row per
// username: an existing row blocks creation with a conflict.  The check is
// read-then-insert, not transactional, same as the rest of the platform.
func (h *CloudinaryHandler) CreateAccount(c echo.Context) error {
    var req model.CloudinaryAccount
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    req.Username = strings.TrimSpace(req.Username)
    if req.Username == "" {
        if sc, ok := middleware.CurrentClaims(c); ok {
            req.Username = sc.Username
        }
    }
    if req.Username == "" {
        return fail(c, http.StatusBadRequest, "Username is required")
    }

    var existing []model.CloudinaryAccount
    if _, err := h.DB.Select(c.Request().Context(), "cloudinaryacc",
        supabase.Query{Select: "id"}.Where(supabase.Eq("username", req.Username)), &existing); err != nil {
        return upstreamFail(c, err, "Error checking cloudinary account")
    }
    if len(existing) > 0 {
        return fail(c, http.StatusConflict, "Cloudinary account already exists for this username")
    }

    req.CreatedAt = nowISO()
    var created []model.CloudinaryAccount
    if err := h.DB.Insert(c.Request().Context(), "cloudinaryacc", []model.CloudinaryAccount{req}, &created); err != nil {
        return upstreamFail(c, err, "Error creating cloudinary account")
    }
    data := req
    if len(created) > 0 {
        data = created[0]
    }
    return c.JSON(http.StatusCreated, data)
}
