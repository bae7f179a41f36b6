package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, name, email string) error
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// SignupErrorResponse represents an error response for registration
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: User already exists
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.SignupResponse "User successfully registered"
// @Failure 400 {object} handlers.SignupErrorResponse "User already exists / invalid request"
// @Router /auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Password, req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "User already exists",
				})
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrInvalidEmail):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Message: "User registered successfully",
		})
	}
}
