package server

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"fortiercars/internal/config"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders(debug bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// HSTS only when served over TLS outside debug mode
			if !debug && r.TLS != nil {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORS answers preflight requests and decorates responses for cross-origin callers. With "*"
// configured every origin is accepted and echoed back; otherwise unknown origins get 403.
func CORS(cfg *config.CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	anyHeader := slices.Contains(cfg.AllowedHeaders, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !cfg.AllowsAnyOrigin() && !slices.Contains(cfg.AllowedOrigins, origin) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Preflight
			h.Set("Access-Control-Allow-Methods", methods)
			if requested := r.Header.Get("Access-Control-Request-Headers"); anyHeader && requested != "" {
				h.Set("Access-Control-Allow-Headers", requested)
			} else {
				h.Set("Access-Control-Allow-Headers", headers)
			}
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusOK)
		})
	}
}
