// Package subscribe реализует HTTP-обработчик подключения тарифного плана.
package subscribe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики подключения плана.
type Service interface {
	Subscribe(ctx context.Context, username string, planID int) (*models.Subscription, error)
}

// Handler обрабатывает HTTP-запросы подключения плана.
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
// @Summary Подключение тарифного плана
// @Description Создает активную подписку аутентифицированного абонента на план
// @Tags Client subscriptions
// @Produce  json
// @Security BearerAuth
// @Param planId path int true "ID тарифного плана"
// @Success 200 {object} response.Response "Созданная подписка"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID плана"
// @Failure 401 {object} response.ErrorResponse "Абонент не аутентифицирован"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Failure 409 {object} response.ErrorResponse "Подписка уже есть"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /client/subscriptions/subscribe/plan/{planId} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.subscribe"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := middlewarectx.UsernameFromContext(r.Context())
	if !ok {
		log.Warn("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

	planID, err := strconv.Atoi(chi.URLParam(r, "planId"))
	if err != nil {
		log.Error("invalid plan id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid plan id"))
		return
	}

	sub, err := h.service.Subscribe(r.Context(), username, planID)
	switch {
	case errors.Is(err, repository.ErrAlreadySubscribed):
		log.Warn("already subscribed to this plan", slog.Int("plan_id", planID))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("already subscribed to this plan"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("another subscription is active", slog.String("username", username))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("another subscription is active"))
		return
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("plan not found", slog.Int("plan_id", planID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	case err != nil:
		log.Error("failed to subscribe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to subscribe"))
		return
	}

	log.Info("subscribed", slog.String("username", username), slog.Int("plan_id", planID))
	render.JSON(w, r, response.StatusOKWithData(sub))
}
