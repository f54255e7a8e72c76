// Package read реализует административный HTTP-обработчик чтения тарифа.
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

// Service определяет методы бизнес-логики чтения тарифа.
type Service interface {
	ReadTariff(ctx context.Context, id int) (*models.Tariff, error)
}

// Handler обрабатывает HTTP-запросы чтения тарифа администратором.
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
// @Summary Чтение тарифа по ID
// @Tags Admin tariffs
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID тарифа"
// @Success 200 {object} response.Response "Тариф"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/tariffs/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid tariff id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid tariff id"))
		return
	}

	tariff, err := h.service.ReadTariff(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("tariff not found", slog.Int("tariff_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("tariff not found"))
		return
	case err != nil:
		log.Error("failed to read tariff", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read tariff"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(tariff))
}
