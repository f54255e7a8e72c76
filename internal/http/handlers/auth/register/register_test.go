package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/telecom-provider/internal/services/auth"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, password, email, phone string) (string, error) {
	args := m.Called(ctx, username, password, email, phone)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := Request{
		Username: "ivan",
		Password: "strongpass123",
		Email:    "ivan@example.com",
		Phone:    "+79001234567",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная регистрация",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "ivan", "strongpass123", "ivan@example.com", "+79001234567").
					Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"username":"ivan","token":"jwt-token"}}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "короткий пароль",
			requestBody: Request{
				Username: "ivan",
				Password: "short",
				Email:    "ivan@example.com",
				Phone:    "+79001234567",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Password is shorter than 8"}`,
		},
		{
			name:        "контакты заблокированного абонента",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "ivan", "strongpass123", "ivan@example.com", "+79001234567").
					Return("", auth.ErrBanned)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:        "имя пользователя занято",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "ivan", "strongpass123", "ivan@example.com", "+79001234567").
					Return("", repository.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"username, email or phone already taken"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "ivan", "strongpass123", "ivan@example.com", "+79001234567").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
