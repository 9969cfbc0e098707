package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. APP_ENV selects the environment; the "local"
// environment additionally enables the one-time admin bootstrap endpoint.
type Config struct {
	Env     string // application environment ("local" or "prod")
	AppName string // display name rendered in page headers
	AppURL  string // public base URL of the site
	Port    string // HTTP port to listen on

	DBHost string // database host address
	DBPort string // database port number
	DBUser string // database username
	DBPass string // database password (optional)
	DBName string // database name

	CachePrefix string        // prefix namespacing every cache key
	CacheTTL    time.Duration // lifetime of cache entries

	SessionSecret string // secret used to sign session cookies
	BcryptCost    int    // bcrypt cost for admin password hashing
	UploadDir     string // flat directory holding uploaded shop images

	BootstrapAdminEmail    string // admin created by the local bootstrap endpoint
	BootstrapAdminPassword string // its initial password
}

// Load reads configuration from environment variables and returns a Config.
// Required variables are enforced by must(); missing values cause the
// process to exit with a fatal log message before it serves any request.
func Load() Config {
	return Config{
		Env:     getenv("APP_ENV", "local"),
		AppName: getenv("APP_NAME", "ORL Coffee"),
		AppURL:  getenv("APP_URL", "http://localhost:8080"),
		Port:    getenv("APP_PORT", "8080"),

		DBHost: must("DB_HOST"),
		DBPort: getenv("DB_PORT", "3306"),
		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"), // empty allowed
		DBName: must("DB_NAME"),

		CachePrefix: getenv("CACHE_PREFIX", "orl_coffee_"),
		CacheTTL:    time.Duration(envInt("CACHE_TTL", 3600)) * time.Second,

		SessionSecret: must("SESSION_SECRET"),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		UploadDir:     getenv("UPLOAD_DIR", "images"),

		BootstrapAdminEmail:    getenv("BOOTSTRAP_ADMIN_EMAIL", "andrew@example.com"),
		BootstrapAdminPassword: getenv("BOOTSTRAP_ADMIN_PASSWORD", "secret"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}
