package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/middlewares"
	"github.com/sbilibin2017/movie-catalog/internal/models"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// MovieGetter defines the interface that the movie lookup service must implement.
type MovieGetter interface {
	Get(ctx context.Context, userID, movieID uuid.UUID) (*models.MovieDB, error)
}

// MovieGetErrorResponse represents an error response for a movie lookup
// swagger:model MovieGetErrorResponse
type MovieGetErrorResponse struct {
	// Error message
	// default: Movie not found
	Error string `json:"error"`
}

// NewMovieGetHandler returns an HTTP handler that fetches one of the
// caller's movies by id.
// @Summary Get a movie
// @Description Returns the caller's movie with the given id
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} models.MovieDB "Movie"
// @Failure 404 {object} handlers.MovieGetErrorResponse "Movie not found"
// @Failure 401 {object} handlers.MovieGetErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /movies/{id} [get]
func NewMovieGetHandler(svc MovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieGetErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		movieID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MovieGetErrorResponse{
				Error: "Movie not found",
			})
			return
		}

		movie, err := svc.Get(r.Context(), claims.UserID, movieID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieGetErrorResponse{
					Error: "Movie not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieGetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(movie)
	}
}
