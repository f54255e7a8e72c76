// Package models содержит доменную модель пользователя оператора связи,
// включающую учётные данные, ссылки на роль и статус аккаунта.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// Константы ролей и статусов аккаунта. Справочники ролей и статусов
// заполняются миграцией, имена фиксированы.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"

	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBanned   = "banned"
)

// User представляет зарегистрированного пользователя системы.
// Хэш пароля не сериализуется в JSON-ответы.
type User struct {
	ID           int    `json:"id"`       // Уникальный идентификатор пользователя
	Username     string `json:"username"` // Имя пользователя (уникальное)
	PasswordHash string `json:"-"`        // Хэш пароля пользователя
	Email        string `json:"email"`    // Электронная почта (уникальная)
	Phone        string `json:"phone"`    // Номер телефона (уникальный)
	Role         string `json:"role"`     // Роль пользователя, admin или client
	Status       string `json:"status"`   // Статус аккаунта: active, inactive или banned
}

// DummyUser используется для приёма данных из JSON-запроса при создании
// или обновлении пользователя администратором, прежде чем конвертировать их в User.
type DummyUser struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=256"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=18"`
	Role     string `json:"role" validate:"required,oneof=admin client"`
	Status   string `json:"status" validate:"required,oneof=active inactive banned"`
}

// Role представляет роль пользователя из справочника ролей.
type Role struct {
	ID   int    `json:"id"`   // Уникальный идентификатор роли
	Name string `json:"name"` // Название роли
}

// Status представляет статус аккаунта из справочника статусов.
type Status struct {
	ID   int    `json:"id"`   // Уникальный идентификатор статуса
	Name string `json:"name"` // Название статуса
}

// DummyRole используется для приёма данных из JSON-запроса при создании
// или переименовании роли администратором.
type DummyRole struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
}

// DummyStatus используется для приёма данных из JSON-запроса при создании
// или переименовании статуса аккаунта администратором.
type DummyStatus struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
}
