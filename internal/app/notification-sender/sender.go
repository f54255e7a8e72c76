// Package sender собирает почтовый воркер: подключение к RabbitMQ
// и подписку на очередь писем подтверждения.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/telecom-provider/internal/config"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/smtp"
	"github.com/magabrotheeeer/telecom-provider/internal/services/notification"
)

// App держит соединение с брокером и сервис отправки писем.
type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	service *notification.Service
	logger  *slog.Logger
}

// New собирает воркер: брокер, SMTP транспорт и сервис уведомлений.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	service := notification.New(transport, cfg.ConfirmBaseURL, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		service: service,
		logger:  logger,
	}, nil
}

// Run подписывается на очередь и работает до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "notifications.email_confirmation", a.service.SendEmailConfirmation)
	if err != nil {
		a.logger.Error("failed to start email_confirmation consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("notification sender shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
