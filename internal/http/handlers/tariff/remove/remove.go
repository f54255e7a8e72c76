// Package remove реализует административный HTTP-обработчик удаления тарифа.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
)

// Service определяет методы бизнес-логики удаления тарифа.
type Service interface {
	DeleteTariff(ctx context.Context, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы удаления тарифа администратором.
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
// @Summary Удаление тарифа по ID
// @Tags Admin tariffs
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID тарифа"
// @Success 200 {object} response.Response "Количество удаленных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/tariffs/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid tariff id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid tariff id"))
		return
	}

	count, err := h.service.DeleteTariff(r.Context(), id)
	if err != nil {
		log.Error("failed to delete tariff", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete tariff"))
		return
	}
	if count == 0 {
		log.Warn("tariff not found", slog.Int("tariff_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("tariff not found"))
		return
	}

	log.Info("tariff deleted", slog.Int("tariff_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": count,
	}))
}
