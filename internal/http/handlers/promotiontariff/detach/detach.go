// Package detach реализует административный HTTP-обработчик отвязки
// акции от тарифа.
package detach

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

// Service определяет методы бизнес-логики отвязки акции от тарифа.
type Service interface {
	DetachPromotionTariff(ctx context.Context, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы отвязки акции от тарифа администратором.
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
// @Summary Удаление связи акции с тарифом по ID
// @Tags Admin promotion-tariffs
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID связи"
// @Success 200 {object} response.Response "Количество удаленных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Связь не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/promotion-tariffs/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promotiontariff.detach"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid link id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid link id"))
		return
	}

	count, err := h.service.DetachPromotionTariff(r.Context(), id)
	if err != nil {
		log.Error("failed to detach promotion from tariff", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to detach promotion from tariff"))
		return
	}
	if count == 0 {
		log.Warn("link not found", slog.Int("promotion_tariff_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("link not found"))
		return
	}

	log.Info("promotion detached from tariff", slog.Int("promotion_tariff_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": count,
	}))
}
