// Package read реализует административный HTTP-обработчик чтения роли.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики чтения роли.
type Service interface {
	ReadRole(ctx context.Context, id int) (*models.Role, error)
}

// Handler обрабатывает HTTP-запросы чтения роли администратором.
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
// @Summary Чтение роли по ID
// @Tags Admin roles
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Success 200 {object} response.Response "Роль"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Роль не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/roles/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.role.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid role id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid role id"))
		return
	}

	role, err := h.service.ReadRole(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("role not found", slog.Int("role_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("role not found"))
		return
	case err != nil:
		log.Error("failed to read role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read role"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(role))
}
