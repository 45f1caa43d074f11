package http

import (
	"context"
	"net"
	"net/http"

	"github.com/adisantoso/toko-bangunan/internal/auth"
	rl "github.com/adisantoso/toko-bangunan/internal/http/rate_limiter"
)

type contextKey string

const roleKey = contextKey("role")

// AuthMiddleware gates the admin routes behind a valid bearer token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil || !token.Valid {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		role, _ := claims["role"].(string)
		if role != "admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRole returns the authenticated role, or "" for anonymous requests.
func GetRole(r *http.Request) string {
	if val, ok := r.Context().Value(roleKey).(string); ok {
		return val
	}
	return ""
}

// RateLimitMiddleware applies a per-IP token bucket. A no-op until the
// limiter is configured at startup.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
