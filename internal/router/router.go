package router // package router defines how HTTP routes are registered for the API

import (
    "net/http"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/redis/go-redis/v9"

    "github.com/foodbao/admin-api/internal/config"
    "github.com/foodbao/admin-api/internal/handler"
    "github.com/foodbao/admin-api/internal/middleware"
    "github.com/foodbao/admin-api/internal/model"
)

// Handlers collects every handler the API mounts.  The caller constructs
// them once in main and hands the bundle over.
type Handlers struct {
    Auth       *handler.AuthHandler
    Client     *handler.ClientHandler
    Catalog    *handler.CatalogHandler
    Ledger     *handler.LedgerHandler
    Cloudinary *handler.CloudinaryHandler
    RPC        *handler.RPCHandler
    AppConfig  *handler.ConfigHandler
}

// Register wires every route onto the Echo instance.  The Redis client may
// be nil, in which case the cache and rate-limit middleware run as no-ops.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
    e.Use(echomw.Logger())
    e.Use(echomw.Recover())
    // The admin UI is served from a different origin, so every response
    // carries permissive CORS headers and preflights are answered early.
    e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
        AllowOrigins: []string{"*"},
        AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
        AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
        MaxAge:       86400,
    }))

    e.GET("/healthz", handler.Health)

    api := e.Group("/api")

    // Unauthenticated surface: login (rate limited), token verification,
    // public upload credentials and the boot-time app config.
    api.POST("/auth", h.Auth.Login, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    api.GET("/verify", h.Auth.Verify)
    api.GET("/cloudinary-credentials", h.Cloudinary.Credentials)
    api.GET("/config", h.AppConfig.AppConfig)

    authed := middleware.JWTAuth(cfg.JWTSecret)
    adminOnly := middleware.RequireRole(model.RoleAdmin)
    adminOrClient := middleware.RequireRole(model.RoleAdmin, model.RoleClient)

    // Client management is the admin console's core and stays admin-only,
    // except the by-username read which any signed-in user may call for
    // their own profile page.
    clients := api.Group("/clients", authed)
    clients.GET("", h.Client.List, adminOnly)
    clients.POST("", h.Client.Create, adminOnly)
    clients.GET("/:username", h.Client.GetByUsername)
    clients.PUT("/:username", h.Client.Update, adminOnly)
    clients.PATCH("/:username", h.Client.Update, adminOnly)
    clients.DELETE("/:username", h.Client.Delete, adminOnly)

    // Catalog reads are public so the storefront can render menus without a
    // session; a short-lived Redis cache absorbs the read traffic.  Writes
    // require a signed-in admin or vendor.
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    catalogWrite := []echo.MiddlewareFunc{authed, adminOrClient}

    api.GET("/menu-items", h.Catalog.ListMenuItems, cache)
    api.GET("/menu-items/:id", h.Catalog.GetMenuItem, cache)
    api.POST("/menu-items", h.Catalog.CreateMenuItem, catalogWrite...)
    api.PUT("/menu-items/:id", h.Catalog.UpdateMenuItem, catalogWrite...)
    api.PATCH("/menu-items/:id", h.Catalog.UpdateMenuItem, catalogWrite...)
    api.DELETE("/menu-items/:id", h.Catalog.DeleteMenuItem, catalogWrite...)

    api.GET("/menu-categories", h.Catalog.ListMenuCategories, cache)
    api.GET("/menu-categories/:id", h.Catalog.GetMenuCategory, cache)
    api.POST("/menu-categories", h.Catalog.CreateMenuCategory, catalogWrite...)
    api.PUT("/menu-categories/:id", h.Catalog.UpdateMenuCategory, catalogWrite...)
    api.PATCH("/menu-categories/:id", h.Catalog.UpdateMenuCategory, catalogWrite...)
    api.DELETE("/menu-categories/:id", h.Catalog.DeleteMenuCategory, catalogWrite...)

    api.GET("/item-variations", h.Catalog.ListItemVariations, cache)
    api.GET("/item-variations/:id", h.Catalog.GetItemVariation, cache)
    api.POST("/item-variations", h.Catalog.CreateItemVariation, catalogWrite...)
    api.PUT("/item-variations/:id", h.Catalog.UpdateItemVariation, catalogWrite...)
    api.PATCH("/item-variations/:id", h.Catalog.UpdateItemVariation, catalogWrite...)
    api.DELETE("/item-variations/:id", h.Catalog.DeleteItemVariation, catalogWrite...)

    // Credit bookkeeping: vendors may read their own history, only admins
    // may move money.
    api.GET("/credit-ledgers", h.Ledger.List, authed, adminOrClient)
    api.POST("/credit-ledgers", h.Ledger.Transact, authed, adminOnly)

    // Per-username Cloudinary accounts for any signed-in user.
    api.GET("/cloudinary/accounts", h.Cloudinary.ListAccounts, authed)
    api.POST("/cloudinary/accounts", h.Cloudinary.CreateAccount, authed)

    // Raw database function passthrough, admin-only.
    api.POST("/supabase-rpc", h.RPC.Call, authed, adminOnly)
}
