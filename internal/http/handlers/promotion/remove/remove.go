// Package remove реализует административный HTTP-обработчик удаления акции.
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

// Service определяет методы бизнес-логики удаления акции.
type Service interface {
	DeletePromotion(ctx context.Context, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы удаления акции администратором.
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
// @Summary Удаление акции по ID
// @Tags Admin promotions
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID акции"
// @Success 200 {object} response.Response "Количество удаленных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Акция не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/promotions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promotion.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid promotion id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid promotion id"))
		return
	}

	count, err := h.service.DeletePromotion(r.Context(), id)
	if err != nil {
		log.Error("failed to delete promotion", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete promotion"))
		return
	}
	if count == 0 {
		log.Warn("promotion not found", slog.Int("promotion_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("promotion not found"))
		return
	}

	log.Info("promotion deleted", slog.Int("promotion_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": count,
	}))
}
