// Package list реализует административный HTTP-обработчик справочника ролей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// Service определяет методы бизнес-логики справочника ролей.
type Service interface {
	ListRoles(ctx context.Context) ([]*models.Role, error)
}

// Handler обрабатывает HTTP-запросы справочника ролей.
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
// @Summary Справочник ролей
// @Tags Admin roles
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Список ролей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/roles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.role.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListRoles(r.Context())
	if err != nil {
		log.Error("failed to list roles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list roles"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
