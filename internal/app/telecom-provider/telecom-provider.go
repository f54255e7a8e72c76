package telecomprovider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/telecom-provider/internal/blacklist"
	"github.com/magabrotheeeer/telecom-provider/internal/config"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/migrations"
	authservice "github.com/magabrotheeeer/telecom-provider/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/telecom-provider/internal/services/catalog"
	subservice "github.com/magabrotheeeer/telecom-provider/internal/services/subscription"
	userservice "github.com/magabrotheeeer/telecom-provider/internal/services/user"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// App держит собранный HTTP-сервер и внешние соединения приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	amqp   *amqp.Connection
}

// New собирает приложение: хранилище, миграции, реестр отозванных токенов,
// брокер сообщений, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	jwtMaker, err := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	registry, err := newBlacklist(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Брокер не обязателен: без него смена профиля применяется сразу,
	// без письма с подтверждением.
	var amqpConn *amqp.Connection
	var amqpCh *amqp.Channel
	if cfg.RabbitMQURL != "" {
		amqpConn, err = rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
		if err != nil {
			return nil, err
		}
		amqpCh, err = rabbitmq.SetupChannel(amqpConn, rabbitmq.GetNotificationQueues())
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("rabbitmq url is empty, profile updates apply without email confirmation")
	}

	auth := authservice.New(db, jwtMaker)
	subscriptions := subservice.New(db, logger)
	users := userservice.New(db, amqpCh, logger)
	catalog := catalogservice.New(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, registry, auth, subscriptions, users, catalog)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		amqp:   amqpConn,
	}, nil
}

// newBlacklist выбирает реализацию реестра отозванных токенов по конфигурации.
func newBlacklist(ctx context.Context, cfg *config.Config) (blacklist.Blacklist, error) {
	switch cfg.BlacklistBackend {
	case "memory":
		return blacklist.NewMemory(cfg.BlacklistTTL), nil
	case "redis":
		return blacklist.InitServer(ctx, cfg.RedisConnection, cfg.BlacklistTTL)
	default:
		return nil, fmt.Errorf("unknown blacklist backend: %s", cfg.BlacklistBackend)
	}
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		if a.amqp != nil {
			if closeErr := a.amqp.Close(); closeErr != nil {
				a.logger.Error("failed to close rabbitmq connection", sl.Err(closeErr))
			}
		}
		return err
	}
}
