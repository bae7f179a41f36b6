package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/movie-catalog/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	validClaims := &jwt.Claims{UserID: userID, Email: "a@x.com", TokenID: "jti-1"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener, s *MockSessionChecker)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener, s *MockSessionChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener, s *MockSessionChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevokedToken",
			mockSetup: func(m *MockTokener, s *MockSessionChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("revokedtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "revokedtoken").
					Return(validClaims, nil)
				s.EXPECT().IsRevoked(gomock.Any(), "jti-1").
					Return(true, nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevocationCheckError",
			mockSetup: func(m *MockTokener, s *MockSessionChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(validClaims, nil)
				s.EXPECT().IsRevoked(gomock.Any(), "jti-1").
					Return(false, errors.New("redis down"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener, s *MockSessionChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(validClaims, nil)
				s.EXPECT().IsRevoked(gomock.Any(), "jti-1").
					Return(false, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockSessions := NewMockSessionChecker(ctrl)
			tt.mockSetup(mockTokener, mockSessions)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				// Claims must be available downstream
				claims := GetClaimsFromContext(r.Context())
				assert.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)

				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockSessions)(next)

			req := httptest.NewRequest(http.MethodGet, "/movies", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestAuthMiddleware_NilSessionChecker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("validtoken", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "validtoken").
		Return(&jwt.Claims{UserID: uuid.New(), TokenID: "jti"}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(mockTokener, nil)(next)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaimsFromContext(req.Context()))
}
