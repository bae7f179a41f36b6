package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGuardMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		path             string
		mockSetup        func(m *MockGuardTokener)
		expectedStatus   int
		expectedLocation string
		expectNextCalled bool
	}{
		{
			name: "LoggedInOnLoginPage",
			path: "/auth/login",
			mockSetup: func(m *MockGuardTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				m.EXPECT().Validate(gomock.Any(), "tok").Return(nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name: "LoggedInOnSignupPage",
			path: "/auth/signup",
			mockSetup: func(m *MockGuardTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				m.EXPECT().Validate(gomock.Any(), "tok").Return(nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name: "LoggedInOnProtectedPage",
			path: "/",
			mockSetup: func(m *MockGuardTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				m.EXPECT().Validate(gomock.Any(), "tok").Return(nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "AnonymousOnProtectedPage",
			path: "/",
			mockSetup: func(m *MockGuardTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/auth/login",
		},
		{
			name: "AnonymousOnLoginPage",
			path: "/auth/login",
			mockSetup: func(m *MockGuardTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "ForgedTokenOnProtectedPage",
			path: "/",
			mockSetup: func(m *MockGuardTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("forged", nil)
				m.EXPECT().Validate(gomock.Any(), "forged").Return(errors.New("bad signature"))
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/auth/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockGuardTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := GuardMiddleware(mockTokener)(next)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
		})
	}
}
