package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/middlewares"
	"github.com/sbilibin2017/movie-catalog/internal/models"
)

// MovieLister defines the interface that the movie listing service must implement.
type MovieLister interface {
	List(ctx context.Context, userID uuid.UUID, page int) ([]models.MovieDB, *models.MovieListMeta, error)
}

// MovieItems wraps the page of movies
// swagger:model MovieItems
type MovieItems struct {
	// Page of movies
	Items []models.MovieDB `json:"items"`
}

// MovieListResponse represents a movie listing response
// swagger:model MovieListResponse
type MovieListResponse struct {
	// Movies on the requested page
	Movies MovieItems `json:"movies"`

	// Pagination metadata
	Meta *models.MovieListMeta `json:"meta"`
}

// MovieListErrorResponse represents an error response for movie listing
// swagger:model MovieListErrorResponse
type MovieListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewMovieListHandler returns an HTTP handler that lists the caller's movies
// one page at a time.
// @Summary List movies
// @Description Returns one page of the caller's movies with pagination metadata
// @Tags movies
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} handlers.MovieListResponse "Page of movies"
// @Failure 401 {object} handlers.MovieListErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /movies [get]
func NewMovieListHandler(svc MovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieListErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				page = parsed
			}
		}

		movies, meta, err := svc.List(r.Context(), claims.UserID, page)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MovieListErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if movies == nil {
			movies = []models.MovieDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieListResponse{
			Movies: MovieItems{Items: movies},
			Meta:   meta,
		})
	}
}
