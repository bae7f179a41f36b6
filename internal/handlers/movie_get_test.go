package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/movie-catalog/internal/models"
	"github.com/sbilibin2017/movie-catalog/internal/services"
)

// withURLParam attaches a chi route context carrying one URL parameter.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestMovieGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	movieID := uuid.New()
	movie := &models.MovieDB{MovieID: movieID, Title: "Heat", PublishingYear: 1995, UserID: userID}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockMovieGetter)
		expectedCode int
	}{
		{
			name: "success",
			id:   movieID.String(),
			mockSetup: func(m *MockMovieGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID, movieID).
					Return(movie, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			id:   movieID.String(),
			mockSetup: func(m *MockMovieGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID, movieID).
					Return(nil, services.ErrMovieNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			mockSetup:    func(m *MockMovieGetter) {},
			expectedCode: 404,
		},
		{
			name: "internal server error",
			id:   movieID.String(),
			mockSetup: func(m *MockMovieGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID, movieID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMovieGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewMovieGetHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/movies/"+tt.id, nil, userID)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == 200 {
				var got models.MovieDB
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, movieID, got.MovieID)
				assert.Equal(t, "Heat", got.Title)
			}
		})
	}
}

func TestMovieGetHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewMovieGetHandler(NewMockMovieGetter(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/movies/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
