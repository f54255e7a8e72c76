// Package update реализует административный HTTP-обработчик
// переименования роли.
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

// Service определяет методы бизнес-логики переименования роли.
type Service interface {
	RenameRole(ctx context.Context, id int, name string) (int, error)
}

// Handler обрабатывает HTTP-запросы переименования роли администратором.
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
// @Summary Переименование роли по ID
// @Tags Admin roles
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Param request body models.DummyRole true "Новое название роли"
// @Success 200 {object} response.Response "Количество изменённых строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или JSON"
// @Failure 404 {object} response.ErrorResponse "Роль не найдена"
// @Failure 409 {object} response.ErrorResponse "Встроенная роль или название занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/roles/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.role.update"

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

	var req models.DummyRole
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

	count, err := h.service.RenameRole(r.Context(), id, req.Name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("role not found", slog.Int("role_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("role not found"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("role rename rejected", slog.Int("role_id", id))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("role is built-in or name already taken"))
		return
	case err != nil:
		log.Error("failed to rename role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to rename role"))
		return
	}
	if count == 0 {
		log.Warn("role not found", slog.Int("role_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("role not found"))
		return
	}

	log.Info("role renamed", slog.Int("role_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": count,
	}))
}
