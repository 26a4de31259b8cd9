package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const principalKey contextKey = "principal"

// Middleware validates the Bearer token on every request and injects the
// resolved Principal into the request context for the handlers.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Retrieve the Authorization header.
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "authorization token is missing")
				return
			}

			// 2. Expect the standard "Bearer <token>" format.
			tokenStr := strings.TrimPrefix(header, "Bearer ")

			// 3. Validate the JWT and extract the identity.
			principal, err := ValidateToken(secret, tokenStr)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			// 4. Continue the chain with the enriched context.
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom extracts the identity injected by Middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// WithPrincipal returns a context carrying the given identity. Test helper
// and tooling entry point.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
