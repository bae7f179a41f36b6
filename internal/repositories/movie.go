package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/middlewares"
	"github.com/sbilibin2017/movie-catalog/internal/models"
)

const movieColumns = `movie_id, title, publishing_year, poster, user_id, created_at, updated_at`

type MovieReadRepository struct {
	db *sqlx.DB
}

func NewMovieReadRepository(db *sqlx.DB) *MovieReadRepository {
	return &MovieReadRepository{db: db}
}

// GetByID returns the user's movie with the given id, or nil when absent.
// Movies owned by other users are invisible to the caller.
func (r *MovieReadRepository) GetByID(ctx context.Context, userID, movieID uuid.UUID) (*models.MovieDB, error) {
	const query = `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE movie_id = $1 AND user_id = $2
	`

	var movie models.MovieDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &movie, query, movieID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{movieID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// List returns a page of the user's movies in insertion order.
func (r *MovieReadRepository) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.MovieDB, error) {
	const query = `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE user_id = $1
		ORDER BY created_at, movie_id
		OFFSET $2 LIMIT $3
	`

	movies := make([]models.MovieDB, 0, limit)
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &movies, query, userID, offset, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, offset, limit},
		"result", len(movies),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// Count returns the total number of movies owned by the user.
func (r *MovieReadRepository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM movies WHERE user_id = $1`

	var total int
	err := sqlx.GetContext(ctx, r.queryer(ctx), &total, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

// queryer prefers the request transaction when one is present in the context.
func (r *MovieReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type MovieWriteRepository struct {
	db *sqlx.DB
}

func NewMovieWriteRepository(db *sqlx.DB) *MovieWriteRepository {
	return &MovieWriteRepository{db: db}
}

// Save inserts a new movie and returns the persisted record.
func (r *MovieWriteRepository) Save(ctx context.Context, userID uuid.UUID, title string, publishingYear int, poster string) (*models.MovieDB, error) {
	const query = `
		INSERT INTO movies (title, publishing_year, poster, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + movieColumns
	args := []any{title, publishingYear, poster, userID}

	var movie models.MovieDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &movie, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Update applies a partial merge to the user's movie: nil fields keep their
// stored values. Returns nil when the movie does not exist for this user.
func (r *MovieWriteRepository) Update(ctx context.Context, userID, movieID uuid.UUID, title *string, publishingYear *int, poster *string) (*models.MovieDB, error) {
	const query = `
		UPDATE movies
		SET title = COALESCE($3, title),
		    publishing_year = COALESCE($4, publishing_year),
		    poster = COALESCE($5, poster),
		    updated_at = NOW()
		WHERE movie_id = $1 AND user_id = $2
		RETURNING ` + movieColumns
	args := []any{movieID, userID, title, publishingYear, poster}

	var movie models.MovieDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &movie, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Delete removes the user's movie. Returns false when no row matched.
func (r *MovieWriteRepository) Delete(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	const query = `DELETE FROM movies WHERE movie_id = $1 AND user_id = $2`
	args := []any{movieID, userID}

	res, err := r.execer(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *MovieWriteRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

func (r *MovieWriteRepository) execer(ctx context.Context) sqlx.ExecerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}
