// Package middleware provides cross-cutting HTTP middleware.
package middleware

import (
	"net/http"
	"strings"
)

// CORSConfig holds the CORS policy.
type CORSConfig struct {
	// AllowedOrigins is the origin whitelist. The single entry "*" allows
	// every origin, which matches the public-read posture of the news API.
	AllowedOrigins []string

	// AllowedMethods are the HTTP methods advertised on preflight.
	AllowedMethods []string

	// AllowedHeaders are the request headers advertised on preflight.
	AllowedHeaders []string
}

// CORS returns middleware that emits CORS headers and short-circuits
// preflight requests.
//
// Behavior:
//   - Access-Control headers are set on every response for allowed origins.
//   - Any OPTIONS request is answered with 204 and no body, without
//     reaching the router.
//   - With a wildcard policy the literal "*" is sent; otherwise the
//     request origin is echoed back when it is on the whitelist.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	wildcard := len(config.AllowedOrigins) == 1 && config.AllowedOrigins[0] == "*"
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case wildcard:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && originAllowed(origin, config.AllowedOrigins):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, o := range allowed {
		if o == origin {
			return true
		}
	}
	return false
}
