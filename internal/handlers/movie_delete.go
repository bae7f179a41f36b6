package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/middlewares"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// MovieDeleter defines the interface that the movie deletion service must implement.
type MovieDeleter interface {
	Delete(ctx context.Context, userID, movieID uuid.UUID) error
}

// MovieDeleteRequest represents the JSON body for movie deletion
// swagger:model MovieDeleteRequest
type MovieDeleteRequest struct {
	// Movie id
	// required: true
	ID uuid.UUID `json:"id"`
}

// MovieDeleteResponse represents a successful movie deletion response
// swagger:model MovieDeleteResponse
type MovieDeleteResponse struct {
	// Success message
	// default: Movie deleted successfully
	Message string `json:"message"`
}

// MovieDeleteErrorResponse represents an error response for movie deletion
// swagger:model MovieDeleteErrorResponse
type MovieDeleteErrorResponse struct {
	// Error message
	// default: Movie not found
	Error string `json:"error"`
}

// NewMovieDeleteHandler returns an HTTP handler that removes one of the
// caller's movies together with its stored poster.
// @Summary Delete a movie
// @Description Deletes the caller's movie with the given id and its poster file
// @Tags movies
// @Accept json
// @Produce json
// @Param movieDeleteRequest body handlers.MovieDeleteRequest true "Movie deletion request"
// @Success 200 {object} handlers.MovieDeleteResponse "Movie deleted"
// @Failure 400 {object} handlers.MovieDeleteErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.MovieDeleteErrorResponse "Movie not found"
// @Failure 401 {object} handlers.MovieDeleteErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /movies [delete]
func NewMovieDeleteHandler(svc MovieDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieDeleteErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req MovieDeleteRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieDeleteErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, req.ID); err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieDeleteErrorResponse{
					Error: "Movie not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieDeleteErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieDeleteResponse{
			Message: "Movie deleted successfully",
		})
	}
}
