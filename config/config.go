package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// AppURL is the public origin of the site, used for canonical and sitemap URLs
	AppURL string
	// RateLimitRPS is the per-IP request rate allowed on public routes
	RateLimitRPS float64
	// TrustProxy takes the client IP from X-Forwarded-For (behind a reverse proxy / CDN)
	TrustProxy bool
	// ExportDir is where cmd/export writes the static build
	ExportDir string
	// Cloudflare R2 Storage (static export publishing)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	// ChromePath overrides the browser used by cmd/audit
	ChromePath string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		AppURL:            strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 20),
		TrustProxy:        getEnvBool("TRUST_PROXY", false),
		ExportDir:         getEnv("EXPORT_DIR", "dist"),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
		ChromePath:        getEnv("CHROME_PATH", ""),
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether every R2 credential is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Printf("[WARNING] Invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}
