package models

import (
	"time"

	"github.com/google/uuid"
)

// MovieDB represents a movie record in the database
type MovieDB struct {
	MovieID        uuid.UUID `json:"id" db:"movie_id"`                    // Primary key
	Title          string    `json:"title" db:"title"`                    // Movie title
	PublishingYear int       `json:"publishingYear" db:"publishing_year"` // Publishing year
	Poster         string    `json:"poster" db:"poster"`                  // Poster reference (local URL path or remote URL)
	UserID         uuid.UUID `json:"userId" db:"user_id"`                 // Owning user
	CreatedAt      time.Time `json:"created_at" db:"created_at"`          // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`          // Last update timestamp
}

// MovieListMeta describes pagination metadata for movie listings.
type MovieListMeta struct {
	Page        int `json:"page"`        // Requested page, 1-based
	Limit       int `json:"limit"`       // Page size
	TotalMovies int `json:"totalMovies"` // Total records for the user
	TotalPages  int `json:"totalPages"`  // ceil(TotalMovies / Limit)
}
