// Package attach реализует административный HTTP-обработчик привязки
// акции к тарифу.
package attach

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
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Request содержит идентификаторы связываемой пары акция-тариф.
type Request struct {
	PromotionID int `json:"promotion_id" validate:"required,gt=0"`
	TariffID    int `json:"tariff_id" validate:"required,gt=0"`
}

// Service определяет методы бизнес-логики привязки акции к тарифу.
type Service interface {
	AttachPromotionTariff(ctx context.Context, promotionID, tariffID int) (int, error)
}

// Handler обрабатывает HTTP-запросы привязки акции к тарифу администратором.
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
// @Summary Привязка акции к тарифу
// @Tags Admin promotion-tariffs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Пара акция-тариф"
// @Success 200 {object} response.Response "ID созданной связи"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Акция или тариф не найдены"
// @Failure 409 {object} response.ErrorResponse "Связь уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/promotion-tariffs [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promotiontariff.attach"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	id, err := h.service.AttachPromotionTariff(r.Context(), req.PromotionID, req.TariffID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("promotion or tariff not found",
			slog.Int("promotion_id", req.PromotionID),
			slog.Int("tariff_id", req.TariffID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("promotion or tariff not found"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("link already exists",
			slog.Int("promotion_id", req.PromotionID),
			slog.Int("tariff_id", req.TariffID))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("promotion already attached to this tariff"))
		return
	case err != nil:
		log.Error("failed to attach promotion to tariff", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to attach promotion to tariff"))
		return
	}

	log.Info("promotion attached to tariff", slog.Int("promotion_tariff_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"promotion_tariff_id": id,
	}))
}
