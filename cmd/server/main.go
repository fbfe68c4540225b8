package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/config"
    "github.com/foodbao/admin-api/internal/handler"
    "github.com/foodbao/admin-api/internal/queue"
    "github.com/foodbao/admin-api/internal/router"
    "github.com/foodbao/admin-api/internal/supabase"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set the environment directly

    cfg := config.Load()
    db := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)
    rdb := config.NewRedisClient()

    // Background consumer that mirrors credit events into the audit log and
    // surfaces balance write-back failures.  It reconnects on its own, so a
    // broker outage never blocks the API.
    go queue.StartCreditConsumer()

    h := router.Handlers{
        Auth:       handler.NewAuthHandler(cfg, db),
        Client:     handler.NewClientHandler(cfg, db),
        Catalog:    handler.NewCatalogHandler(db),
        Ledger:     handler.NewLedgerHandler(cfg, db),
        Cloudinary: handler.NewCloudinaryHandler(cfg, db),
        RPC:        handler.NewRPCHandler(db),
        AppConfig:  handler.NewConfigHandler(cfg),
    }

    e := echo.New()
    e.HideBanner = true
    router.Register(e, cfg, h, rdb)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
