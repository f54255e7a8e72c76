// Package notification отправляет абонентам письма с подтверждением
// смены контактных данных. Сообщения приходят из RabbitMQ, ссылка
// в письме ведет на одноразовый токен подтверждения.
package notification

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/telecom-provider/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/smtp"
	userservice "github.com/magabrotheeeer/telecom-provider/internal/services/user"
)

// Transport описывает SMTP транспорт отправки писем.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// Service отправляет письма подтверждения по событиям из очереди.
type Service struct {
	transport      Transport
	confirmBaseURL string
	log            *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport Transport, confirmBaseURL string, log *slog.Logger) *Service {
	return &Service{
		transport:      transport,
		confirmBaseURL: confirmBaseURL,
		log:            log,
	}
}

// SendEmailConfirmation отправляет письмо со ссылкой подтверждения
// смены контактных данных. Используется как обработчик сообщений очереди.
func (s *Service) SendEmailConfirmation(body []byte) error {
	const op = "notification.SendEmailConfirmation"

	var event userservice.EmailConfirmationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	link := fmt.Sprintf("%s/api/v1/client/users/confirm/%s", s.confirmBaseURL, event.Token)
	subject := "Подтверждение смены контактных данных"
	bodyText := fmt.Sprintf("Здравствуйте, %s!\n\n"+
		"Вы запросили смену контактных данных в личном кабинете.\n"+
		"Чтобы подтвердить изменения, перейдите по ссылке: %s\n\n"+
		"Ссылка действует 24 часа. Если вы не запрашивали изменения, проигнорируйте это письмо.",
		event.Username, link)

	if err := s.sendEmail([]string{event.Email}, subject, bodyText); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent", slog.String("to", strings.Join(to, ";")))
	return nil
}
