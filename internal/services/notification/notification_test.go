package notification

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/telecom-provider/internal/lib/smtp"
	userservice "github.com/magabrotheeeer/telecom-provider/internal/services/user"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

type MockSMTPClient struct {
	mock.Mock
}

func (m *MockSMTPClient) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *MockSMTPClient) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *MockSMTPClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockSMTPClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSMTPClient) Quit() error {
	args := m.Called()
	return args.Error(0)
}

type captureWriter struct {
	data []byte
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *captureWriter) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendEmailConfirmation(t *testing.T) {
	transport := new(MockTransport)
	client := new(MockSMTPClient)
	writer := &captureWriter{}

	transport.On("GetSMTPUser").Return("noreply@telecom.local")
	transport.On("Connect").Return(client, nil)
	client.On("Mail", "noreply@telecom.local").Return(nil)
	client.On("Rcpt", "ivan@example.com").Return(nil)
	client.On("Data").Return(writer, nil)
	client.On("Quit").Return(nil)
	client.On("Close").Return(nil)

	svc := New(transport, "https://lk.telecom.local", discardLogger())

	body, err := json.Marshal(userservice.EmailConfirmationEvent{
		Email:    "ivan@example.com",
		Username: "ivan",
		Token:    "tok-123",
	})
	require.NoError(t, err)

	err = svc.SendEmailConfirmation(body)
	require.NoError(t, err)

	msg := string(writer.data)
	assert.Contains(t, msg, "To: ivan@example.com", "Письмо должно уйти на адрес из события")
	assert.Contains(t, msg, "https://lk.telecom.local/api/v1/client/users/confirm/tok-123",
		"Ссылка должна вести на одноразовый токен подтверждения")
	transport.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestSendEmailConfirmation_BadPayload(t *testing.T) {
	transport := new(MockTransport)
	svc := New(transport, "https://lk.telecom.local", discardLogger())

	err := svc.SendEmailConfirmation([]byte("{not json"))
	require.Error(t, err)
	transport.AssertNotCalled(t, "Connect")
}

func TestSendEmailConfirmation_ConnectError(t *testing.T) {
	transport := new(MockTransport)
	transport.On("GetSMTPUser").Return("noreply@telecom.local")
	transport.On("Connect").Return(nil, errors.New("dial tcp: connection refused"))

	svc := New(transport, "https://lk.telecom.local", discardLogger())

	body, err := json.Marshal(userservice.EmailConfirmationEvent{
		Email:    "ivan@example.com",
		Username: "ivan",
		Token:    "tok-123",
	})
	require.NoError(t, err)

	err = svc.SendEmailConfirmation(body)
	require.Error(t, err, "Ошибка SMTP должна вернуть сообщение в очередь")
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}
