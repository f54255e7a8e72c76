package telecomprovider

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/telecom-provider/internal/blacklist"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/telecom-provider/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/telecom-provider/internal/services/catalog"
	subservice "github.com/magabrotheeeer/telecom-provider/internal/services/subscription"
	userservice "github.com/magabrotheeeer/telecom-provider/internal/services/user"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	secret := base64.StdEncoding.EncodeToString([]byte("routes-test-secret"))
	jwtMaker, err := jwt.NewMaker(secret, time.Minute)
	require.NoError(t, err)

	registry := blacklist.NewMemory(time.Minute)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, registry,
		authservice.New(nil, jwtMaker),
		subservice.New(nil, logger),
		userservice.New(nil, nil, logger),
		catalogservice.New(nil),
	)
	return router
}

// Запрос без токена должен дойти до шлюза и получить 401, а не 405:
// это фиксирует, что метод зарегистрирован именно с тем глаголом,
// который заявлен в документации обработчика.
func TestClientRouteMethods(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"смена плана через PUT", http.MethodPut, "/api/v1/client/subscriptions/switch/plan/1", http.StatusUnauthorized},
		{"отмена подписки через DELETE", http.MethodDelete, "/api/v1/client/subscriptions/cancel", http.StatusUnauthorized},
		{"смена пароля через PUT", http.MethodPut, "/api/v1/client/users/password", http.StatusUnauthorized},
		{"смена профиля через PUT", http.MethodPut, "/api/v1/client/users/profile", http.StatusUnauthorized},
		{"смена плана через POST не маршрутизируется", http.MethodPost, "/api/v1/client/subscriptions/switch/plan/1", http.StatusMethodNotAllowed},
		{"отмена через POST не маршрутизируется", http.MethodPost, "/api/v1/client/subscriptions/cancel", http.StatusMethodNotAllowed},
		{"смена пароля через PATCH не маршрутизируется", http.MethodPatch, "/api/v1/client/users/password", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// Выход без действующего токена отклоняется шлюзом.
func TestLogoutRequiresAuthentication(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDictionaryRoutesRegistered(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/admin/roles"},
		{http.MethodPut, "/api/v1/admin/roles/1"},
		{http.MethodDelete, "/api/v1/admin/roles/1"},
		{http.MethodPost, "/api/v1/admin/statuses"},
		{http.MethodPut, "/api/v1/admin/statuses/1"},
		{http.MethodDelete, "/api/v1/admin/statuses/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			// Маршрут существует: без токена шлюз отвечает 401, а не 405.
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
