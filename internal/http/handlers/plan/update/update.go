// Package update реализует административный HTTP-обработчик обновления
// тарифного плана.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики обновления тарифного плана.
type Service interface {
	UpdatePlan(ctx context.Context, req models.DummyPlan, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы обновления тарифного плана администратором.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление тарифного плана по ID
// @Tags Admin plans
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Param request body models.DummyPlan true "Данные тарифного плана"
// @Success 200 {object} response.Response "Количество измененных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "План или тариф не найдены"
// @Failure 409 {object} response.ErrorResponse "Название плана занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/plans/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.update"

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

	var req models.DummyPlan
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	count, err := h.service.UpdatePlan(r.Context(), req, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("tariff not found", slog.Int("tariff_id", req.TariffID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("tariff not found"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("duplicate plan name", slog.String("name", req.Name))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("plan name already taken"))
		return
	case err != nil:
		log.Error("failed to update plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update plan"))
		return
	}
	if count == 0 {
		log.Warn("plan not found", slog.Int("plan_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	}

	log.Info("plan updated", slog.Int("plan_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": count,
	}))
}
