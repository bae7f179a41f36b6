package middlewares

import (
	"context"
	"net/http"
)

// Auth navigation paths reachable without a session.
const (
	loginPath  = "/auth/login"
	signupPath = "/auth/signup"
)

// GuardTokener validates the session token carried by a request.
type GuardTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// GuardMiddleware gates navigation routes: authenticated users are redirected
// away from the login/signup pages, unauthenticated users are redirected to
// the login page. The decision is based on the signed session token, never on
// the plain isLoggedIn flag cookie, which is client-side convenience only.
func GuardMiddleware(tokener GuardTokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			loggedIn := false
			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				loggedIn = tokener.Validate(ctx, tokenString) == nil
			}

			authPage := r.URL.Path == loginPath || r.URL.Path == signupPath

			switch {
			case loggedIn && authPage:
				http.Redirect(w, r, "/", http.StatusFound)
			case !loggedIn && !authPage:
				http.Redirect(w, r, loginPath, http.StatusFound)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
