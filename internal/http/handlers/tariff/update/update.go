// Package update реализует административный HTTP-обработчик обновления тарифа.
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

// Service определяет методы бизнес-логики обновления тарифа.
type Service interface {
	UpdateTariff(ctx context.Context, req models.DummyTariff, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы обновления тарифа администратором.
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
// @Summary Обновление тарифа по ID
// @Tags Admin tariffs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID тарифа"
// @Param request body models.DummyTariff true "Новые данные тарифа"
// @Success 200 {object} response.Response "Количество обновленных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или JSON"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 409 {object} response.ErrorResponse "Название тарифа занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/tariffs/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.update"

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

	var req models.DummyTariff
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

	count, err := h.service.UpdateTariff(r.Context(), req, id)
	switch {
	case errors.Is(err, repository.ErrConflict):
		log.Warn("duplicate tariff name", slog.Int("tariff_id", id))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("tariff name already taken"))
		return
	case err != nil:
		log.Error("failed to update tariff", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update tariff"))
		return
	case count == 0:
		log.Warn("tariff not found", slog.Int("tariff_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("tariff not found"))
		return
	}

	log.Info("tariff updated", slog.Int("tariff_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": count,
	}))
}
