// Package status реализует административный HTTP-обработчик смены статуса
// пользователя: блокировка, разблокировка, деактивация.
package status

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики смены статуса пользователя.
type Service interface {
	UpdateStatus(ctx context.Context, id int, statusName string) error
}

// Handler обрабатывает HTTP-запросы смены статуса пользователя.
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

// validStatus проверяет имя статуса по справочнику.
func validStatus(name string) bool {
	switch name {
	case models.StatusActive, models.StatusInactive, models.StatusBanned:
		return true
	}
	return false
}

// ServeHTTP godoc
// @Summary Смена статуса пользователя
// @Description Переводит пользователя в статус active, inactive или banned. Блокировка вступает в силу на следующем запросе пользователя.
// @Tags Admin users
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param statusName path string true "Имя статуса" Enums(active, inactive, banned)
// @Success 200 {object} response.Response "Статус обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или имя статуса"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users/{id}/status/{statusName} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid user id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	statusName := chi.URLParam(r, "statusName")
	if !validStatus(statusName) {
		log.Warn("unknown status name", slog.String("status", statusName))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown status name"))
		return
	}

	err = h.service.UpdateStatus(r.Context(), id, statusName)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("user not found", slog.Int("user_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	case err != nil:
		log.Error("failed to update user status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update user status"))
		return
	}

	log.Info("user status updated",
		slog.Int("user_id", id),
		slog.String("status", statusName))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user_id": id,
		"status":  statusName,
	}))
}
