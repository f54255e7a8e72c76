// Package remove реализует административный HTTP-обработчик удаления роли.
package remove

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
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Service определяет методы бизнес-логики удаления роли.
type Service interface {
	DeleteRole(ctx context.Context, id int) (int, error)
}

// Handler обрабатывает HTTP-запросы удаления роли администратором.
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
// @Summary Удаление роли по ID
// @Tags Admin roles
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Success 200 {object} response.Response "Количество удаленных строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Роль не найдена"
// @Failure 409 {object} response.ErrorResponse "Встроенная роль или роль используется"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/roles/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.role.remove"

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

	count, err := h.service.DeleteRole(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("role not found", slog.Int("role_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("role not found"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("role delete rejected", slog.Int("role_id", id))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("role is built-in or in use"))
		return
	case err != nil:
		log.Error("failed to delete role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete role"))
		return
	}
	if count == 0 {
		log.Warn("role not found", slog.Int("role_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("role not found"))
		return
	}

	log.Info("role deleted", slog.Int("role_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": count,
	}))
}
