package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session_token"

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Claims is the identity extracted from a validated session token.
type Claims struct {
	UserID    uuid.UUID // User id from the "user_id" claim
	Name      string    // Display name
	Email     string    // User email
	TokenID   string    // Token id ("jti"), used for revocation
	ExpiresAt time.Time // Token expiry
}

// sessionClaims is the wire representation of the token payload.
type sessionClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Generate creates a signed session token embedding the user's identity.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, name, email string) (string, error) {
	now := time.Now()

	claims := sessionClaims{
		UserID: userID.String(),
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Validate verifies the token signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns the embedded identity if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var sc sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &sc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(sc.UserID)
	if err != nil {
		return nil, errors.New("invalid user_id format")
	}

	claims := &Claims{
		UserID:  userID,
		Name:    sc.Name,
		Email:   sc.Email,
		TokenID: sc.ID,
	}
	if sc.ExpiresAt != nil {
		claims.ExpiresAt = sc.ExpiresAt.Time
	}

	return claims, nil
}

// GetTokenFromRequest extracts the token string from the session cookie,
// falling back to the Authorization header for non-browser clients.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("session token missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
