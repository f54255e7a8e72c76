package models

import "time"

// EmailToken представляет токен подтверждения смены контактных данных.
// Токен отправляется на новую почту пользователя; изменения профиля
// применяются только после перехода по ссылке с токеном.
type EmailToken struct {
	Token       string    // Значение токена (uuid)
	UserID      int       // Идентификатор пользователя
	NewEmail    string    // Новая электронная почта
	NewUsername string    // Новое имя пользователя
	NewPhone    string    // Новый номер телефона
	ExpiresAt   time.Time // Срок действия токена
}
