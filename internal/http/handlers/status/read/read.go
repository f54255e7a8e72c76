// Package read реализует административный HTTP-обработчик чтения
// статуса аккаунта.
package read

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

// Service определяет методы бизнес-логики чтения статуса.
type Service interface {
	ReadStatus(ctx context.Context, id int) (*models.Status, error)
}

// Handler обрабатывает HTTP-запросы чтения статуса администратором.
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
// @Summary Чтение статуса аккаунта по ID
// @Tags Admin statuses
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID статуса"
// @Success 200 {object} response.Response "Статус"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Статус не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/statuses/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.read"

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

	status, err := h.service.ReadStatus(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("status not found", slog.Int("status_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("status not found"))
		return
	case err != nil:
		log.Error("failed to read status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read status"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(status))
}
