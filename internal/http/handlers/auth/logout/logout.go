// Package logout реализует HTTP-обработчик выхода: предъявленный токен
// заносится в реестр отозванных и перестает приниматься немедленно.
package logout

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/blacklist"
	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы выхода абонентов.
type Handler struct {
	log      *slog.Logger
	registry blacklist.Blacklist
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, registry blacklist.Blacklist) *Handler {
	return &Handler{
		log:      log,
		registry: registry,
	}
}

// ServeHTTP godoc
// @Summary Выход абонента
// @Description Отзывает предъявленный JWT: токен попадает в реестр отозванных
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Токен отозван"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует"
// @Failure 500 {object} response.ErrorResponse "Ошибка реестра отозванных токенов"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Warn("logout without bearer token")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	if err := h.registry.Revoke(r.Context(), tokenStr); err != nil {
		log.Error("failed to revoke token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("token revoked")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logged out",
	}))
}
