package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file if present. Real environment variables win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return Getenv("PORT", "8082")
}

func CORSOrigin() string {
	return Getenv("CORS_ORIGIN", "http://localhost:3000")
}

func BaseURL() string {
	return Getenv("BASE_URL", "http://127.0.0.1:"+Port())
}

func AccessTokenSecret() string {
	return Getenv("ACCESS_TOKEN_SECRET", "dev-access-secret")
}

func RefreshTokenSecret() string {
	return Getenv("REFRESH_TOKEN_SECRET", "dev-refresh-secret")
}

func AccessTokenTTL() time.Duration {
	return durationEnv("ACCESS_TOKEN_TTL", 15*time.Minute)
}

func RefreshTokenTTL() time.Duration {
	return durationEnv("REFRESH_TOKEN_TTL", 7*24*time.Hour)
}

// CookieSecure controls the Secure flag on every auth cookie.
func CookieSecure() bool {
	return Getenv("COOKIE_SECURE", "false") == "true"
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default", key, v)
		return fallback
	}
	return d
}
