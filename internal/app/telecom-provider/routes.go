// Package telecomprovider собирает приложение: маршруты, middleware
// и жизненный цикл HTTP-сервера.
package telecomprovider

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/telecom-provider/internal/blacklist"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/auth/register"
	plancreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/plan/create"
	planlist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/plan/list"
	planread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/plan/read"
	planremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/plan/remove"
	planupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/plan/update"
	promocreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotion/create"
	rolecreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/role/create"
	rolelist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/role/list"
	roleread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/role/read"
	roleremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/role/remove"
	roleupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/role/update"
	promolist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotion/list"
	promoread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotion/read"
	promoremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotion/remove"
	promoupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotion/update"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotiontariff/attach"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotiontariff/detach"
	promotarifflist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/promotiontariff/list"
	statuscreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/status/create"
	statuslist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/status/list"
	statusread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/status/read"
	statusremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/status/remove"
	statusupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/status/update"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/cancel"
	subcreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/me"
	subread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/read"
	subremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/subscribe"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/switchplan"
	subupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/subscription/update"
	tariffcreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/tariff/create"
	tarifflist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/tariff/list"
	tariffread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/tariff/read"
	tariffremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/tariff/remove"
	tariffupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/tariff/update"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/confirm"
	usercreate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/password"
	"github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/profile"
	userread "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/read"
	userremove "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/remove"
	userstatus "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/status"
	userupdate "github.com/magabrotheeeer/telecom-provider/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/telecom-provider/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/telecom-provider/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/telecom-provider/internal/services/catalog"
	subservice "github.com/magabrotheeeer/telecom-provider/internal/services/subscription"
	userservice "github.com/magabrotheeeer/telecom-provider/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	jwtMaker jwt.Maker,
	registry blacklist.Blacklist,
	auth *authservice.Service,
	subscriptions *subservice.Service,
	users *userservice.Service,
	catalog *catalogservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(rate.Limit(20), 40)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, auth).ServeHTTP)
		// Ссылка из письма, токен одноразовый
		r.Get("/client/users/confirm/{token}", confirm.New(logger, users).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(jwtMaker, registry, auth, logger))
			r.Use(middlewarectx.RequireAuth(logger))
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))

			// Выход требует действующего токена: отозванный или
			// просроченный отбрасывается ещё на шлюзе.
			r.Post("/auth/logout", logout.New(logger, registry).ServeHTTP)

			r.Route("/client", func(r chi.Router) {
				r.Get("/subscriptions/me", me.New(logger, subscriptions).ServeHTTP)
				r.Post("/subscriptions/subscribe/plan/{planId}", subscribe.New(logger, subscriptions).ServeHTTP)
				r.Put("/subscriptions/switch/plan/{planId}", switchplan.New(logger, subscriptions).ServeHTTP)
				r.Delete("/subscriptions/cancel", cancel.New(logger, subscriptions).ServeHTTP)
				r.Put("/users/password", password.New(logger, users).ServeHTTP)
				r.Put("/users/profile", profile.New(logger, users).ServeHTTP)
			})

			// Административная группа
			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewarectx.RequireAdmin(logger))

				r.Post("/users", usercreate.New(logger, users).ServeHTTP)
				r.Get("/users", userlist.New(logger, users).ServeHTTP)
				r.Get("/users/{id}", userread.New(logger, users).ServeHTTP)
				r.Put("/users/{id}", userupdate.New(logger, users).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, users).ServeHTTP)
				r.Patch("/users/{id}/status/{statusName}", userstatus.New(logger, users).ServeHTTP)

				r.Post("/roles", rolecreate.New(logger, users).ServeHTTP)
				r.Get("/roles", rolelist.New(logger, users).ServeHTTP)
				r.Get("/roles/{id}", roleread.New(logger, users).ServeHTTP)
				r.Put("/roles/{id}", roleupdate.New(logger, users).ServeHTTP)
				r.Delete("/roles/{id}", roleremove.New(logger, users).ServeHTTP)

				r.Post("/statuses", statuscreate.New(logger, users).ServeHTTP)
				r.Get("/statuses", statuslist.New(logger, users).ServeHTTP)
				r.Get("/statuses/{id}", statusread.New(logger, users).ServeHTTP)
				r.Put("/statuses/{id}", statusupdate.New(logger, users).ServeHTTP)
				r.Delete("/statuses/{id}", statusremove.New(logger, users).ServeHTTP)

				r.Post("/subscriptions", subcreate.New(logger, subscriptions).ServeHTTP)
				r.Get("/subscriptions", sublist.New(logger, subscriptions).ServeHTTP)
				r.Get("/subscriptions/{id}", subread.New(logger, subscriptions).ServeHTTP)
				r.Put("/subscriptions/{id}", subupdate.New(logger, subscriptions).ServeHTTP)
				r.Delete("/subscriptions/{id}", subremove.New(logger, subscriptions).ServeHTTP)

				r.Post("/tariffs", tariffcreate.New(logger, catalog).ServeHTTP)
				r.Get("/tariffs", tarifflist.New(logger, catalog).ServeHTTP)
				r.Get("/tariffs/{id}", tariffread.New(logger, catalog).ServeHTTP)
				r.Put("/tariffs/{id}", tariffupdate.New(logger, catalog).ServeHTTP)
				r.Delete("/tariffs/{id}", tariffremove.New(logger, catalog).ServeHTTP)

				r.Post("/plans", plancreate.New(logger, catalog).ServeHTTP)
				r.Get("/plans", planlist.New(logger, catalog).ServeHTTP)
				r.Get("/plans/{id}", planread.New(logger, catalog).ServeHTTP)
				r.Put("/plans/{id}", planupdate.New(logger, catalog).ServeHTTP)
				r.Delete("/plans/{id}", planremove.New(logger, catalog).ServeHTTP)

				r.Post("/promotions", promocreate.New(logger, catalog).ServeHTTP)
				r.Get("/promotions", promolist.New(logger, catalog).ServeHTTP)
				r.Get("/promotions/{id}", promoread.New(logger, catalog).ServeHTTP)
				r.Put("/promotions/{id}", promoupdate.New(logger, catalog).ServeHTTP)
				r.Delete("/promotions/{id}", promoremove.New(logger, catalog).ServeHTTP)

				r.Post("/promotion-tariffs", attach.New(logger, catalog).ServeHTTP)
				r.Get("/promotion-tariffs", promotarifflist.New(logger, catalog).ServeHTTP)
				r.Delete("/promotion-tariffs/{id}", detach.New(logger, catalog).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
