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
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
	"github.com/sbilibin2017/voice-transcriber/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret1").
					Return(&models.AuthResult{UserID: userID, Username: "alice", Token: "tok"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"id": userID.String(), "username": "alice", "token": "tok"},
		},
		{
			name: "username already exists",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret1").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username already exists."},
		},
		{
			name: "validation failure",
			body: `{"username":"al","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "al", "secret1").
					Return(nil, apperr.Wrap(apperr.KindInvalidInput, "Invalid username or password.", errors.New("min=3")))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid username or password.", "details": "min=3"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret1").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid-json}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, resp)
			} else {
				assert.NotEmpty(t, resp["error"])
			}
		})
	}
}
