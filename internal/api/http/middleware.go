package http

import (
	"context"
	"net/http"
	"strings"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

// AuthMiddleware validates the bearer token and injects the verified claims
// into the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAccess rejects requests without a valid access token.
func (m *AuthMiddleware) RequireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authorization token is not provided"})
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, security.ErrWrongTokenType)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims)))
	})
}

// RequireStaff rejects non-staff callers. Must run after RequireAccess.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil || claims.Role != string(domain.UserRoleStaff) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "staff role required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "bearer ") {
		return header[7:], true
	}
	return header, true
}

// ClaimsFromContext extracts the verified token claims injected by
// RequireAccess.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return nil, security.ErrInvalidToken
	}
	return claims, nil
}

// UserIDFromContext is a convenience over ClaimsFromContext for handlers that
// only need the caller's identity.
func UserIDFromContext(ctx context.Context) (int32, error) {
	claims, err := ClaimsFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
