package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/movie-catalog/internal/jwt"
	"github.com/sbilibin2017/movie-catalog/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that revokes the current session
// and expires both session cookies. A request without a valid session still
// succeeds so clients can always log out.
// @Summary User logout
// @Description Revokes the current session token and clears session cookies
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 500 {object} handlers.LogoutErrorResponse "Internal server error"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(jwt.SessionCookie); err == nil && cookie.Value != "" {
			if err := svc.Logout(r.Context(), cookie.Value); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LogoutErrorResponse{
					Error: "Internal server error",
				})
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.SetCookie(w, &http.Cookie{
			Name:   LoggedInCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
