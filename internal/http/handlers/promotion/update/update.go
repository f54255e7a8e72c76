// Package update реализует административный HTTP-обработчик обновления акции.
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

// Service определяет методы бизнес-логики обновления акции.
type Service interface {
	UpdatePromotion(ctx context.Context, req models.DummyPromotion, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы обновления акции администратором.
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
// @Summary Обновление акции по ID
// @Tags Admin promotions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID акции"
// @Param request body models.DummyPromotion true "Данные акции"
// @Success 200 {object} response.Response "Количество измененных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Акция не найдена"
// @Failure 409 {object} response.ErrorResponse "Название акции занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/promotions/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promotion.update"

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

	var req models.DummyPromotion
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

	count, err := h.service.UpdatePromotion(r.Context(), req, id)
	switch {
	case errors.Is(err, repository.ErrConflict):
		log.Warn("duplicate promotion title", slog.String("title", req.Title))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("promotion title already taken"))
		return
	case err != nil:
		log.Error("failed to update promotion", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update promotion"))
		return
	}
	if count == 0 {
		log.Warn("promotion not found", slog.Int("promotion_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("promotion not found"))
		return
	}

	log.Info("promotion updated", slog.Int("promotion_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": count,
	}))
}
