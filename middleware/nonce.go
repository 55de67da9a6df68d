package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// ContentSecurityPolicy returns the policy served with every page.
// The page loads no third-party resources; inline styles carry the reveal
// custom properties.
func ContentSecurityPolicy(nonce string) string {
	return fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'; connect-src 'self'; manifest-src 'self'; base-uri 'self'; form-action 'none'; frame-ancestors 'none'", nonce)
}

// CSPNonce middleware generates a nonce for each request and adds it to the context
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				return fmt.Errorf("failed to generate nonce: %w", err)
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for components)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", ContentSecurityPolicy(nonce))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
