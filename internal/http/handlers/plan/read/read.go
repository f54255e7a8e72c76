// Package read реализует административный HTTP-обработчик чтения
// тарифного плана.
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

// Service определяет методы бизнес-логики чтения тарифного плана.
type Service interface {
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
}

// Handler обрабатывает HTTP-запросы чтения тарифного плана администратором.
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
// @Summary Чтение тарифного плана по ID
// @Tags Admin plans
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Success 200 {object} response.Response "Тарифный план"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/plans/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid plan id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid plan id"))
		return
	}

	plan, err := h.service.ReadPlan(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("plan not found", slog.Int("plan_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	case err != nil:
		log.Error("failed to read plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read plan"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(plan))
}
