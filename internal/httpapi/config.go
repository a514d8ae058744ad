package httpapi

import (
	"fitscan/internal/ratelimit"
)

const defaultMaxBodyBytes int64 = 10 << 20

// maxBodyBytes caps request bodies of the upload endpoints.
var maxBodyBytes = defaultMaxBodyBytes

// SetMaxBodyBytes sets the maximum request body size. Non-positive values
// restore the 10 MiB default.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
		return
	}
	maxBodyBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// environment selects production hardening and developer-only routes.
var environment = "development"

// SetEnvironment sets the deployment environment reported by /health.
func SetEnvironment(env string) {
	if env == "" {
		env = "development"
	}
	environment = env
}

func isProduction() bool  { return environment == "production" }
func isDevelopment() bool { return environment == "development" }

// limiter guards the POST endpoints. Nil disables rate limiting.
var limiter *ratelimit.Limiter

// SetRateLimiter installs the limiter applied to the analysis endpoints.
func SetRateLimiter(l *ratelimit.Limiter) { limiter = l }
