package remove

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

	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) DeleteRole(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestRemoveRoleHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		roleID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное удаление роли",
			roleID: "3",
			setupMock: func(m *MockService) {
				m.On("DeleteRole", mock.Anything, 3).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"deleted_count":1}}`,
		},
		{
			name:           "некорректный ID",
			roleID:         "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid role id"}`,
		},
		{
			name:   "роль не найдена",
			roleID: "99",
			setupMock: func(m *MockService) {
				m.On("DeleteRole", mock.Anything, 99).
					Return(0, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"role not found"}`,
		},
		{
			name:   "встроенная роль защищена",
			roleID: "1",
			setupMock: func(m *MockService) {
				m.On("DeleteRole", mock.Anything, 1).
					Return(0, repository.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"role is built-in or in use"}`,
		},
		{
			name:   "ошибка сервиса",
			roleID: "3",
			setupMock: func(m *MockService) {
				m.On("DeleteRole", mock.Anything, 3).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete role"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/roles/"+tt.roleID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.roleID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
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
