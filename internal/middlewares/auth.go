package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/movie-catalog/internal/jwt"
	"github.com/sbilibin2017/movie-catalog/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionChecker reports whether a token id has been revoked (logout).
type SessionChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that validates the session token and,
// when a SessionChecker is configured, rejects revoked tokens. On success the
// parsed claims are stored in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			if sessions != nil {
				revoked, err := sessions.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					logger.Log.Errorw("session revocation check failed", "err", err)
					writeUnauthorized(w)
					return
				}
				if revoked {
					logger.Log.Infow("revoked session token rejected", "token_id", claims.TokenID)
					writeUnauthorized(w)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// claimsContextKey is an unexported type for the claims context key
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// SetClaimsToContext stores validated session claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves session claims from the context.
// Returns nil if the request did not pass AuthMiddleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
