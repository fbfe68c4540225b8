package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Secrets (the service-role key and the JWT
// signing secret) are only ever read here and never echoed back to clients.
type Config struct {
    Env          string // application environment (e.g. "dev", "production")
    Port         string // HTTP port to listen on
    SupabaseURL  string // base URL of the hosted database REST service
    SupabaseKey  string // service-role key sent on every upstream call
    JWTSecret    string // secret used to sign session tokens
    TokenTTLMin  int    // session token time-to-live in minutes
    BcryptCost   int    // bcrypt cost for password hashing
    CloudName    string // Cloudinary cloud name (public, safe to expose)
    UploadPreset string // Cloudinary upload preset (public, safe to expose)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Optional values fall
// back to defaults matching the deployed environment.
func Load() Config {
    return Config{
        Env:          getenv("ENVIRONMENT", "production"),
        Port:         getenv("APP_PORT", "8080"),
        SupabaseURL:  must("SUPABASE_URL"), // upstream database base URL
        SupabaseKey:  mustAny("SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_KEY"),
        JWTSecret:    must("JWT_SECRET"),          // secret for signing session tokens
        TokenTTLMin:  intenv("TOKEN_TTL_MIN", 60), // token lifetime in minutes
        BcryptCost:   intenv("BCRYPT_COST", 10),   // bcrypt cost factor
        CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
        UploadPreset: getenv("CLOUDINARY_UPLOAD_PRESET", "ml_default"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustAny returns the first non-empty value among the given variable names.
// The service-role key has shipped under two different names, so both are
// accepted.  If none is set the application exits.
func mustAny(keys ...string) string {
    for _, k := range keys {
        if v := os.Getenv(k); v != "" {
            return v
        }
    }
    log.Fatalf("missing required env var: %s", keys[0])
    return ""
}

// intenv reads an integer environment variable with a default.  Invalid
// values fall back to the default rather than aborting startup.
func intenv(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Printf("invalid int for %s: %q, using %d", key, s, def)
        return def
    }
    return n
}
