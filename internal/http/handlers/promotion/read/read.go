// Package read реализует административный HTTP-обработчик чтения акции.
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

// Service определяет методы бизнес-логики чтения акции.
type Service interface {
	ReadPromotion(ctx context.Context, id int) (*models.Promotion, error)
}

// Handler обрабатывает HTTP-запросы чтения акции администратором.
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
// @Summary Чтение акции по ID
// @Tags Admin promotions
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID акции"
// @Success 200 {object} response.Response "Акция"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Акция не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/promotions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promotion.read"

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

	promo, err := h.service.ReadPromotion(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("promotion not found", slog.Int("promotion_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("promotion not found"))
		return
	case err != nil:
		log.Error("failed to read promotion", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read promotion"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(promo))
}
