package config

import (
    "os"
    "strings"
    "time"
)

// CacheConfig controls the Redis response cache in front of the public
// catalog reads (menu items, categories, variations).  Menus change a few
// times a day at most, so a short TTL absorbs the storefront's read bursts
// without serving stale prices for long.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    KeyStrategy  string
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads the CACHE_* variables.  Only GET is cached by
// default.  The key strategy must be one the cache middleware understands:
// route, route_query, method_route or method_route_query.
func LoadCacheConfig() CacheConfig {
    cfg := CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
        TTL:          envDur("CACHE_TTL", 30*time.Second),
        KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "route_query"),
        Prefix:       getenv("CACHE_PREFIX", "menu"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
    if cfg.TTL <= 0 {
        cfg.TTL = 30 * time.Second
    }
    if cfg.MaxBodyBytes < 0 {
        cfg.MaxBodyBytes = 0
    }
    if len(cfg.Methods) == 0 {
        cfg.Methods = map[string]bool{"GET": true}
    }
    return cfg
}

// parseMethods splits a comma list of HTTP methods into an upper-cased set.
func parseMethods(s string) map[string]bool {
    m := make(map[string]bool)
    for _, p := range strings.Split(s, ",") {
        if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
            m[p] = true
        }
    }
    return m
}

// getenv reads an environment variable with a default.  Shared by the other
// loaders in this package.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
