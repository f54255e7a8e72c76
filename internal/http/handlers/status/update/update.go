// Package update реализует административный HTTP-обработчик
// переименования статуса аккаунта.
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

// Service определяет методы бизнес-логики переименования статуса.
type Service interface {
	RenameStatus(ctx context.Context, id int, name string) (int, error)
}

// Handler обрабатывает HTTP-запросы переименования статуса администратором.
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
// @Summary Переименование статуса аккаунта по ID
// @Tags Admin statuses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID статуса"
// @Param request body models.DummyStatus true "Новое название статуса"
// @Success 200 {object} response.Response "Количество изменённых строк"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или JSON"
// @Failure 404 {object} response.ErrorResponse "Статус не найден"
// @Failure 409 {object} response.ErrorResponse "Встроенный статус или название занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/statuses/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid status id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid status id"))
		return
	}

	var req models.DummyStatus
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

	count, err := h.service.RenameStatus(r.Context(), id, req.Name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("status not found", slog.Int("status_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("status not found"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("status rename rejected", slog.Int("status_id", id))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("status is built-in or name already taken"))
		return
	case err != nil:
		log.Error("failed to rename status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to rename status"))
		return
	}
	if count == 0 {
		log.Warn("status not found", slog.Int("status_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("status not found"))
		return
	}

	log.Info("status renamed", slog.Int("status_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": count,
	}))
}
