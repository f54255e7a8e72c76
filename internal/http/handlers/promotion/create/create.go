// Package create реализует административный HTTP-обработчик создания акции.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики создания акции.
type Service interface {
	CreatePromotion(ctx context.Context, req models.DummyPromotion) (int, error)
}

// Handler обрабатывает HTTP-запросы создания акции администратором.
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
// @Summary Создание акции
// @Tags Admin promotions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyPromotion true "Данные акции"
// @Success 200 {object} response.Response "ID созданной акции"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Название акции занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/promotions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promotion.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	id, err := h.service.CreatePromotion(r.Context(), req)
	switch {
	case errors.Is(err, repository.ErrConflict):
		log.Warn("duplicate promotion title", slog.String("title", req.Title))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("promotion title already taken"))
		return
	case err != nil:
		log.Error("failed to create promotion", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create promotion"))
		return
	}

	log.Info("promotion created", slog.Int("promotion_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"promotion_id": id,
	}))
}
