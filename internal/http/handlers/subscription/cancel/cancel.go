// Package cancel реализует HTTP-обработчик отмены текущей подписки.
package cancel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики отмены подписки.
type Service interface {
	Cancel(ctx context.Context, username string) error
}

// Handler обрабатывает HTTP-запросы отмены подписки.
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
// @Summary Отмена текущей подписки
// @Description Переводит активную подписку абонента в статус not signed
// @Tags Client subscriptions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Подписка отменена"
// @Failure 401 {object} response.ErrorResponse "Абонент не аутентифицирован"
// @Failure 404 {object} response.ErrorResponse "Активной подписки нет"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /client/subscriptions/cancel [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.cancel"

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

	err := h.service.Cancel(r.Context(), username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// повторная отмена — ошибка, а не no-op
		log.Warn("no active subscription to cancel", slog.String("username", username))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("no active subscription"))
		return
	case err != nil:
		log.Error("failed to cancel subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to cancel subscription"))
		return
	}

	log.Info("subscription cancelled", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "subscription cancelled",
	}))
}
