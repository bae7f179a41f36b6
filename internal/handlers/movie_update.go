package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/middlewares"
	"github.com/sbilibin2017/movie-catalog/internal/models"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// MovieUpdater defines the interface that the movie update service must implement.
type MovieUpdater interface {
	Update(ctx context.Context, userID, movieID uuid.UUID, title *string, publishingYear *int, upload *models.Upload) (*models.MovieDB, error)
}

// MovieUpdateResponse represents a successful movie update response
// swagger:model MovieUpdateResponse
type MovieUpdateResponse struct {
	// Update flag
	// default: true
	Success bool `json:"success"`

	// Updated movie
	Movie *models.MovieDB `json:"movie"`
}

// MovieUpdateErrorResponse represents an error response for movie update
// swagger:model MovieUpdateErrorResponse
type MovieUpdateErrorResponse struct {
	// Error message
	// default: Movie not found
	Error string `json:"error"`
}

// NewMovieUpdateHandler returns an HTTP handler that applies a partial
// update to the caller's movie; absent form fields keep their stored values.
// @Summary Update a movie
// @Description Updates the given fields of the caller's movie; a new poster file replaces the old one
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Param id formData string true "Movie id"
// @Param title formData string false "Movie title"
// @Param publishingYear formData int false "Publishing year"
// @Param file formData file false "Poster image"
// @Success 200 {object} handlers.MovieUpdateResponse "Movie updated"
// @Failure 400 {object} handlers.MovieUpdateErrorResponse "Invalid request"
// @Failure 404 {object} handlers.MovieUpdateErrorResponse "Movie not found"
// @Failure 401 {object} handlers.MovieUpdateErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /movies [put]
func NewMovieUpdateHandler(svc MovieUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		form, err := parseMovieForm(w, r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
				Error: "invalid request body",
			})
			return
		}
		if form.ID == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
				Error: "missing movie id",
			})
			return
		}

		movie, err := svc.Update(r.Context(), claims.UserID, *form.ID, form.Title, form.PublishingYear, form.Upload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "Movie not found",
				})
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieUpdateResponse{
			Success: true,
			Movie:   movie,
		})
	}
}
