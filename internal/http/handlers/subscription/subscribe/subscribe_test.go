package subscribe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/telecom-provider/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// MockService реализует интерфейс subscribe.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Subscribe(ctx context.Context, username string, planID int) (*models.Subscription, error) {
	args := m.Called(ctx, username, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestSubscribeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		planID         string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное подключение плана",
			planID:   "5",
			username: "ivan",
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "ivan", 5).
					Return(&models.Subscription{ID: 1, Status: models.SubscriptionSigned, UserID: 2, PlanID: 5}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"id":1,"status":"signed","user_id":2,"plan_id":5}}`,
		},
		{
			name:           "нет аутентификации",
			planID:         "5",
			username:       "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:           "некорректный ID плана",
			planID:         "abc",
			username:       "ivan",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid plan id"}`,
		},
		{
			name:     "план не найден",
			planID:   "99",
			username: "ivan",
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "ivan", 99).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"plan not found"}`,
		},
		{
			name:     "повторная подписка на тот же план",
			planID:   "5",
			username: "ivan",
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "ivan", 5).
					Return(nil, repository.ErrAlreadySubscribed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"already subscribed to this plan"}`,
		},
		{
			name:     "другая подписка уже активна",
			planID:   "5",
			username: "ivan",
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "ivan", 5).
					Return(nil, repository.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"another subscription is active"}`,
		},
		{
			name:     "ошибка сервиса",
			planID:   "5",
			username: "ivan",
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "ivan", 5).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to subscribe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/client/subscriptions/subscribe/plan/"+tt.planID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("planId", tt.planID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.username != "" {
				ctx = context.WithValue(ctx, middlewarectx.User, tt.username)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
