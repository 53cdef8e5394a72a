package server

import (
	"crypto/subtle"
	"net/http"
)

const CRON_SECRET_HEADER = "X-Cron-Secret"

// CORSOptions are the response headers attached by the CORS middleware.
// They are injected from the app config, never read from package state.
type CORSOptions struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
}

// CORSMiddleware attaches the configured CORS headers to every response
// and short-circuits preflight requests.
func CORSMiddleware(opts CORSOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", opts.AllowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", opts.AllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", opts.AllowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCronSecret guards a handler behind a static shared-secret header
// compare. An unset secret disables the endpoint entirely.
func RequireCronSecret(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if secret == "" {
			http.Error(w, "Cron endpoint disabled", http.StatusForbidden)
			return
		}
		got := r.Header.Get(CRON_SECRET_HEADER)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
