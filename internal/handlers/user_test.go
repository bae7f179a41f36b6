package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/movie-catalog/internal/services"
)

func TestUserIDHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		email        string
		mockSetup    func(m *MockUserIDGetter)
		expectedCode int
		rawBody      bool
	}{
		{
			name:  "success",
			email: "john@example.com",
			mockSetup: func(m *MockUserIDGetter) {
				m.EXPECT().
					GetIDByEmail(gomock.Any(), "john@example.com").
					Return(userID, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "user not found",
			email: "ghost@example.com",
			mockSetup: func(m *MockUserIDGetter) {
				m.EXPECT().
					GetIDByEmail(gomock.Any(), "ghost@example.com").
					Return(uuid.Nil, services.ErrUserDoesNotExist)
			},
			expectedCode: 404,
		},
		{
			name:  "internal server error",
			email: "john@example.com",
			mockSetup: func(m *MockUserIDGetter) {
				m.EXPECT().
					GetIDByEmail(gomock.Any(), "john@example.com").
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			mockSetup:    func(m *MockUserIDGetter) {},
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserIDGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUserIDHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{not-json")
			} else {
				payload, err := json.Marshal(map[string]string{"email": tt.email})
				assert.NoError(t, err)
				body = bytes.NewBuffer(payload)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/user", body)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == 200 {
				var resp UserIDResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, userID, resp.ID)
			}
		})
	}
}
