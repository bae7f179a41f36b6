package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// UserIDGetter defines the interface that the user lookup service must implement.
type UserIDGetter interface {
	GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
}

// UserIDRequest represents the JSON body for a user id lookup
// swagger:model UserIDRequest
type UserIDRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// UserIDResponse represents a successful user id lookup response
// swagger:model UserIDResponse
type UserIDResponse struct {
	// User id
	ID uuid.UUID `json:"id"`
}

// UserIDErrorResponse represents an error response for a user id lookup
// swagger:model UserIDErrorResponse
type UserIDErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserIDHandler returns an HTTP handler that resolves a user id by email.
// @Summary Get user id by email
// @Description Returns the id of the user registered with the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param userIDRequest body handlers.UserIDRequest true "User lookup request"
// @Success 200 {object} handlers.UserIDResponse "User id"
// @Failure 400 {object} handlers.UserIDErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.UserIDErrorResponse "User not found"
// @Router /auth/user [post]
func NewUserIDHandler(svc UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserIDRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserIDErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		id, err := svc.GetIDByEmail(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserIDErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserIDErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserIDResponse{
			ID: id,
		})
	}
}
