// Package register реализует HTTP-обработчик регистрации новых абонентов.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/services/auth"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Request — входные данные для регистрации
type Request struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=256"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=18"`
}

// Service определяет методы бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, password, email, phone string) (string, error)
}

// Handler обрабатывает HTTP-запросы регистрации абонентов.
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
// @Summary Регистрация нового абонента
// @Description Создает нового абонента с ролью client и статусом active, возвращает JWT
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового абонента"
// @Success 200 {object} response.Response "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Контакты принадлежат заблокированному абоненту"
// @Failure 409 {object} response.ErrorResponse "Имя, почта или телефон уже заняты"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при регистрации"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	token, err := h.service.Register(r.Context(), req.Username, req.Password, req.Email, req.Phone)
	switch {
	case errors.Is(err, auth.ErrBanned):
		log.Warn("registration rejected, contacts belong to a banned user")
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("access denied"))
		return
	case errors.Is(err, repository.ErrConflict):
		log.Warn("registration rejected, duplicate username, email or phone")
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("username, email or phone already taken"))
		return
	case err != nil:
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("register success", slog.String("username", req.Username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"username": req.Username,
		"token":    token,
	}))
}
