package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/movie-catalog/internal/jwt"
	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/models"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// LoggedInCookie is the plain navigation flag readable by the front end.
// It carries no authority; the guard and the API trust only the signed
// session token.
const LoggedInCookie = "isLoggedIn"

// loggedInCookieMaxAge keeps the flag for one day, matching the session.
const loggedInCookieMaxAge = 24 * 60 * 60

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Authenticated user identity
	User *models.User `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid User or Password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login. On success the
// signed session token is set as an HttpOnly cookie and a plain isLoggedIn
// flag is set for client-side navigation.
// @Summary User login
// @Description Authenticate user by email and password and set session cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid User or Password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid User or Password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(tokenTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.SetCookie(w, &http.Cookie{
			Name:   LoggedInCookie,
			Value:  "true",
			Path:   "/",
			MaxAge: loggedInCookieMaxAge,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful",
			User:    user,
		})
	}
}
