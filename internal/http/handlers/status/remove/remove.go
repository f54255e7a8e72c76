// Package remove реализует административный HTTP-обработчик удаления
// статуса аккаунта.
package remove

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
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики удаления статуса.
type Service interface {
	DeleteStatus(ctx context.Context, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы удаления статуса администратором.
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
// @Summary Удаление статуса аккаунта по ID
// @Tags Admin statuses
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID статуса"
// @Success 200 {object} response.Response "Количество удаленных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Статус не найден"
// @Failure 409 {object} response.ErrorResponse "Встроенный статус или статус используется"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/statuses/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid status id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid status id"))
		return
	}

	count, err := h.service.DeleteStatus(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("status not found", slog.Int("status_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("status not found"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("status delete rejected", slog.Int("status_id", id))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("status is built-in or in use"))
		return
	case err != nil:
		log.Error("failed to delete status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete status"))
		return
	}
	if count == 0 {
		log.Warn("status not found", slog.Int("status_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("status not found"))
		return
	}

	log.Info("status deleted", slog.Int("status_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": count,
	}))
}
