package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// RPS is the sustained number of requests per second allowed per key
	RPS float64
	// Burst is the number of requests allowed at once (defaults to 2*RPS, at least 1)
	Burst int
	// ExpiresIn drops idle keys from the store
	ExpiresIn time.Duration
	// KeyFunc returns the rate limiting key (defaults to the client IP)
	KeyFunc func(c echo.Context) string
	// Skip lists request paths that are never limited
	Skip []string
	// Message is the error message returned when rate limit is exceeded
	Message string
}

// RateLimit returns a per-key token bucket limiter backed by echo's memory store
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Burst <= 0 {
		config.Burst = max(1, int(config.RPS*2))
	}
	if config.ExpiresIn <= 0 {
		config.ExpiresIn = 3 * time.Minute
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	skip := make(map[string]bool, len(config.Skip))
	for _, p := range config.Skip {
		skip[p] = true
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return skip[c.Path()]
		},
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(config.RPS),
			Burst:     config.Burst,
			ExpiresIn: config.ExpiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return config.KeyFunc(c), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, config.Message)
		},
	})
}
