// Package me реализует HTTP-обработчик просмотра текущей подписки абонента.
package me

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
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики просмотра подписки.
type Service interface {
	GetCurrent(ctx context.Context, username string) (*models.Subscription, error)
}

// Handler обрабатывает HTTP-запросы просмотра текущей подписки.
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
// @Summary Текущая подписка абонента
// @Description Возвращает активную подписку аутентифицированного абонента
// @Tags Client subscriptions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Активная подписка"
// @Failure 401 {object} response.ErrorResponse "Абонент не аутентифицирован"
// @Failure 404 {object} response.ErrorResponse "Активной подписки нет"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /client/subscriptions/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.me"

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

	sub, err := h.service.GetCurrent(r.Context(), username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Info("no active subscription", slog.String("username", username))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("no active subscription"))
		return
	case err != nil:
		log.Error("failed to get current subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get subscription"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(sub))
}
