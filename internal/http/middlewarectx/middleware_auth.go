// Package middlewarectx содержит HTTP middleware аутентификации и авторизации.
//
// AuthMiddleware разбирает JWT из заголовка Authorization, проверяет токен
// по реестру отозванных, перечитывает статус пользователя из базы и в случае
// успеха добавляет в контекст имя пользователя и роль для дальнейшего
// использования в обработчиках. Запрос без валидного токена проходит дальше
// неаутентифицированным; доступ закрывают RequireAuth и RequireAdmin.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-provider/internal/blacklist"
	"github.com/magabrotheeeer/telecom-provider/internal/http/response"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// PrincipalResolver описывает интерфейс загрузки пользователя для
// повторной проверки статуса на каждом запросе.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware возвращает HTTP middleware, который разбирает JWT
// в заголовке Authorization.
//
// Порядок проверок фиксирован: сначала реестр отозванных токенов (отозванный
// токен — сразу 401, без криптографии), затем извлечение субъекта и статус
// пользователя (заблокированный или неактивный — 403 независимо от
// валидности токена), и только потом подпись и срок действия. Невалидный
// токен не даёт ошибку: запрос продолжается без аутентификации.
func AuthMiddleware(maker jwt.Maker, registry blacklist.Blacklist, resolver PrincipalResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			reqLog := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			revoked, err := registry.IsRevoked(r.Context(), tokenStr)
			if err != nil {
				reqLog.Error("failed to check revocation registry", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			if revoked {
				reqLog.Warn("revoked token presented")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			subject, err := maker.ExtractSubject(tokenStr)
			if err != nil {
				reqLog.Warn("unparsable token, continuing unauthenticated", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			principal, err := resolver.ResolvePrincipal(r.Context(), subject)
			if err != nil {
				reqLog.Error("failed to resolve principal", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			if principal.Status == models.StatusBanned || principal.Status == models.StatusInactive {
				reqLog.Warn("blocked user presented a token",
					slog.String("username", subject),
					slog.String("status", principal.Status))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			if !maker.Verify(tokenStr, subject) {
				reqLog.Warn("token verification failed, continuing unauthenticated")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), User, principal.Username)
			ctx = context.WithValue(ctx, Role, principal.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext возвращает имя аутентифицированного пользователя.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(User).(string)
	return username, ok && username != ""
}

// RoleFromContext возвращает роль аутентифицированного пользователя.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(Role).(string)
	return role, ok && role != ""
}

// RequireAuth закрывает группу маршрутов от неаутентифицированных запросов.
func RequireAuth(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UsernameFromContext(r.Context()); !ok {
				log.Warn("unauthenticated request to protected route",
					slog.String("request_id", middleware.GetReqID(r.Context())))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin закрывает группу маршрутов от всех, кроме администраторов.
func RequireAdmin(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok || role != models.RoleAdmin {
				log.Warn("non-admin request to admin route",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
