package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// TokenVerifier checks a bearer token and returns who it was issued to.
type TokenVerifier interface {
	Verify(token string) (subject, role string, err error)
}

// AuthMiddleware rejects requests without a valid bearer token. When roles are given
// the token's role must be one of them.
func AuthMiddleware(verifier TokenVerifier, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			subject, role, err := verifier.Verify(token)
			if err != nil {
				JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
				return
			}

			if len(roles) > 0 && !slices.Contains(roles, role) {
				JSONErrorWithRequest(r, w, http.StatusForbidden, "FORBIDDEN", "Insufficient role", nil)
				return
			}

			ctx := ContextWithSubject(r.Context(), subject, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
