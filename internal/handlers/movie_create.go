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

// MovieCreator defines the interface that the movie creation service must implement.
type MovieCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title string, publishingYear int, upload *models.Upload) (*models.MovieDB, error)
}

// MovieCreateResponse represents a successful movie creation response
// swagger:model MovieCreateResponse
type MovieCreateResponse struct {
	// Creation flag
	// default: true
	Success bool `json:"success"`

	// Created movie
	Movie *models.MovieDB `json:"movie"`
}

// MovieCreateErrorResponse represents an error response for movie creation
// swagger:model MovieCreateErrorResponse
type MovieCreateErrorResponse struct {
	// Creation flag
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: No file uploaded
	Error string `json:"error"`
}

// NewMovieCreateHandler returns an HTTP handler that creates a movie from a
// multipart form with a poster file.
// @Summary Create a movie
// @Description Stores the poster file and creates a movie record owned by the caller
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Movie title"
// @Param publishingYear formData int true "Publishing year"
// @Param file formData file true "Poster image"
// @Success 201 {object} handlers.MovieCreateResponse "Movie created"
// @Failure 400 {object} handlers.MovieCreateErrorResponse "No file uploaded / invalid request"
// @Failure 401 {object} handlers.MovieCreateErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /movies [post]
func NewMovieCreateHandler(svc MovieCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		form, err := parseMovieForm(w, r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		var title string
		if form.Title != nil {
			title = *form.Title
		}
		var year int
		if form.PublishingYear != nil {
			year = *form.PublishingYear
		}

		movie, err := svc.Create(r.Context(), claims.UserID, title, year, form.Upload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoFileUploaded):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieCreateErrorResponse{
					Error: "No file uploaded",
				})
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieCreateErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieCreateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MovieCreateResponse{
			Success: true,
			Movie:   movie,
		})
	}
}
