// Package profile реализует клиентский HTTP-обработчик запроса смены
// контактных данных. Изменения применяются после подтверждения по почте.
package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/telecom-provider/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
)

// Request — входные данные для смены профиля
type Request struct {
	NewUsername string `json:"new_username" validate:"required,min=3,max=32"`
	NewEmail    string `json:"new_email" validate:"required,email"`
	NewPhone    string `json:"new_phone" validate:"required,min=10,max=18"`
}

// Service определяет методы бизнес-логики смены профиля.
type Service interface {
	RequestProfileUpdate(ctx context.Context, username, newUsername, newEmail, newPhone string) error
}

// Handler обрабатывает HTTP-запросы смены профиля абонентом.
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
// @Summary Запрос смены контактных данных
// @Description Сохраняет отложенное изменение профиля и отправляет письмо со ссылкой подтверждения на новую почту
// @Tags Client users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Новые контактные данные"
// @Success 200 {object} response.Response "Письмо отправлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Абонент не аутентифицирован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /client/users/profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

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

	var req Request
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

	err := h.service.RequestProfileUpdate(r.Context(), username,
		req.NewUsername, req.NewEmail, req.NewPhone)
	if err != nil {
		log.Error("failed to request profile update", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update profile"))
		return
	}

	log.Info("profile update requested", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "confirmation email sent",
	}))
}
