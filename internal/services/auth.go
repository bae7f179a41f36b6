package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/movie-catalog/internal/jwt"
	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrMissingFields      = errors.New("missing required fields")
)

// emailPattern is a basic email-shape check, not full RFC validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, name, email string) (uuid.UUID, error)
}

// TokenIssuer defines session token operations used by the auth service.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, name, email string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionRevoker marks session token ids as revoked.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      TokenIssuer
	sessions SessionRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer, sessions SessionRevoker) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		sessions: sessions,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, username, password, name, email string) error {
	if username == "" || password == "" || email == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, string(hashedPassword), name, email); err != nil {
		// A concurrent signup can slip past the existence check; the unique
		// index reports it as a duplicate, not an internal failure.
		if isUniqueViolation(err) {
			logger.Log.Infow("user already exists", "username", username, "email", email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-index
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Login authenticates a user by email and returns a session token together
// with the public identity. A missing user and a wrong password are
// indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Name, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", nil, err
	}

	return token, &models.User{ID: user.UserID, Name: user.Name, Email: user.Email}, nil
}

// Logout revokes the token's id for the remainder of its lifetime.
// An invalid or expired token is already unusable and is not an error.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 || svc.sessions == nil {
		return nil
	}

	if err := svc.sessions.Revoke(ctx, claims.TokenID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke session", "token_id", claims.TokenID, "err", err)
		return err
	}

	return nil
}

// GetIDByEmail returns the id of the user with the given email.
func (svc *AuthService) GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserDoesNotExist
	}

	return user.UserID, nil
}
