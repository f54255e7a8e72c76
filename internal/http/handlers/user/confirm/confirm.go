// Package confirm реализует HTTP-обработчик подтверждения смены контактных
// данных по токену из письма.
package confirm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики подтверждения смены профиля.
type Service interface {
	ConfirmProfileUpdate(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы подтверждения смены профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подтверждение смены контактных данных
// @Description Применяет отложенное изменение профиля по одноразовому токену из письма
// @Tags Client users
// @Produce  json
// @Param token path string true "Токен подтверждения"
// @Success 200 {object} response.Response "Профиль обновлен"
// @Failure 404 {object} response.ErrorResponse "Токен неизвестен или истек"
// @Failure 409 {object} response.ErrorResponse "Новые контакты уже заняты"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /client/users/confirm/{token} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.confirm"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := chi.URLParam(r, "token")

	err := h.service.ConfirmProfileUpdate(r.Context(), token)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("unknown or expired confirmation token")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("unknown or expired token"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("requested contacts already taken")
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("username, email or phone already taken"))
		return
	case err != nil:
		log.Error("failed to confirm profile update", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to confirm profile update"))
		return
	}

	log.Info("profile update confirmed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "profile updated",
	}))
}
