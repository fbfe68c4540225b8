package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/config"
)

// ConfigHandler exposes the safe, non-sensitive configuration the browser
// needs at boot.  The service-role key never leaves the server.
type ConfigHandler struct {
    Cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
    return &ConfigHandler{Cfg: cfg}
}

// AppConfig handles GET /api/config.
func (h *ConfigHandler) AppConfig(c echo.Context) error {
    c.Response().Header().Set("Cache-Control", "public, max-age=3600")
    return c.JSON(http.StatusOK, echo.Map{
        "apiVersion":  "1.0",
        "supabaseUrl": h.Cfg.SupabaseURL,
        "environment": h.Cfg.Env,
        "features": echo.Map{
            "notifications": true,
            "offlineMode":   true,
        },
    })
}
