package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func movieRows(movieID, userID uuid.UUID, title string, year int, poster string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"movie_id", "title", "publishing_year", "poster", "user_id", "created_at", "updated_at",
	}).AddRow(movieID.String(), title, year, poster, userID.String(), now, now)
}

func TestMovieReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	movieID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM movies`).
		WithArgs(movieID, userID).
		WillReturnRows(movieRows(movieID, userID, "Inception", 2010, "/uploads/x.jpg"))

	movie, err := repo.GetByID(ctx, userID, movieID)
	assert.NoError(t, err)
	assert.NotNil(t, movie)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, 2010, movie.PublishingYear)
}

func TestMovieReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM movies`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id"}))

	movie, err := repo.GetByID(ctx, uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	rows := movieRows(uuid.New(), userID, "Inception", 2010, "/uploads/a.jpg")
	now := time.Now()
	rows.AddRow(uuid.NewString(), "Memento", 2000, "/uploads/b.jpg", userID.String(), now, now)

	mock.ExpectQuery(`SELECT (.+) FROM movies`).
		WithArgs(userID, 12, 12).
		WillReturnRows(rows)

	movies, err := repo.List(ctx, userID, 12, 12)
	assert.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0].Title)
}

func TestMovieReadRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	total, err := repo.Count(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 25, total)
}

func TestMovieWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	movieID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`INSERT INTO movies`).
		WithArgs("Inception", 2010, "/uploads/x.jpg", userID).
		WillReturnRows(movieRows(movieID, userID, "Inception", 2010, "/uploads/x.jpg"))

	movie, err := repo.Save(ctx, userID, "Inception", 2010, "/uploads/x.jpg")
	assert.NoError(t, err)
	assert.NotNil(t, movie)
	assert.Equal(t, movieID, movie.MovieID)
	assert.Equal(t, userID, movie.UserID)
}

func TestMovieWriteRepository_Update_PartialMerge(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	movieID, userID := uuid.New(), uuid.New()
	title := "Inception 2"

	mock.ExpectQuery(`UPDATE movies`).
		WithArgs(movieID, userID, &title, nil, nil).
		WillReturnRows(movieRows(movieID, userID, "Inception 2", 2010, "/uploads/x.jpg"))

	movie, err := repo.Update(ctx, userID, movieID, &title, nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, movie)
	assert.Equal(t, "Inception 2", movie.Title)
}

func TestMovieWriteRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`UPDATE movies`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id"}))

	movie, err := repo.Update(ctx, uuid.New(), uuid.New(), nil, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	movieID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM movies`).
		WithArgs(movieID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(ctx, userID, movieID)
	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestMovieWriteRepository_Delete_NoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM movies`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(ctx, uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestMovieWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO movies`).
		WillReturnError(errors.New("disk full"))

	movie, err := repo.Save(ctx, uuid.New(), "Inception", 2010, "/uploads/x.jpg")
	assert.Error(t, err)
	assert.Nil(t, movie)
}
