package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "pgx"), mock
}

func userRows(userID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"user_id", "username", "email", "name", "password_hash", "created_at", "updated_at",
	}).AddRow(userID.String(), "alice", "alice@example.com", "Alice", "hash", now, now)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("alice", "alice@example.com").
		WillReturnRows(userRows(userID))

	user, err := repo.GetByUsernameOrEmail(ctx, "alice", "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "alice", user.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsernameOrEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("ghost", "ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	user, err := repo.GetByUsernameOrEmail(ctx, "ghost", "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("alice@example.com").
		WillReturnRows(userRows(userID))

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserReadRepository_GetByEmail_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("alice@example.com").
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@example.com", "Alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID.String()))

	got, err := repo.Save(ctx, "alice", "hash", "Alice", "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, userID, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@example.com", "Alice", "hash").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

	_, err := repo.Save(ctx, "alice", "hash", "Alice", "alice@example.com")
	assert.Error(t, err)
}
