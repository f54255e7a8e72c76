// Package list реализует административный HTTP-обработчик списка
// тарифных планов.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// Service определяет методы бизнес-логики списка тарифных планов.
type Service interface {
	ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error)
}

// Handler обрабатывает HTTP-запросы списка тарифных планов администратором.
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
// @Summary Список тарифных планов
// @Tags Admin plans
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Размер страницы (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} response.Response "Список тарифных планов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	res, err := h.service.ListPlans(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list plans"))
		return
	}

	log.Info("plans listed", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"entries":    res,
	}))
}
