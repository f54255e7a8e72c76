// Package switchplan реализует HTTP-обработчик смены тарифного плана.
package switchplan

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

// Service определяет методы бизнес-логики смены плана.
type Service interface {
	SwitchPlan(ctx context.Context, username string, newPlanID int) (*models.Subscription, error)
}

// Handler обрабатывает HTTP-запросы смены плана.
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
// @Summary Смена тарифного плана
// @Description Атомарно заменяет активную подписку абонента на подписку с новым планом
// @Tags Client subscriptions
// @Produce  json
// @Security BearerAuth
// @Param planId path int true "ID нового тарифного плана"
// @Success 200 {object} response.Response "Новая активная подписка"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID плана"
// @Failure 401 {object} response.ErrorResponse "Абонент не аутентифицирован"
// @Failure 404 {object} response.ErrorResponse "Нет активной подписки или план не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /client/subscriptions/switch/plan/{planId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.switchplan"

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

	sub, err := h.service.SwitchPlan(r.Context(), username, planID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("no active subscription or unknown plan", slog.Int("plan_id", planID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("no active subscription or unknown plan"))
		return
	case err != nil:
		log.Error("failed to switch plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to switch plan"))
		return
	}

	log.Info("plan switched", slog.String("username", username), slog.Int("plan_id", planID))
	render.JSON(w, r, response.StatusOKWithData(sub))
}
