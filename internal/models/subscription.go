// Package models содержит доменные структуры, описывающие подписку
// пользователя на тарифный план.
package models

// Статусы подписки. У одного пользователя в любой момент времени
// может быть не более одной подписки в статусе signed.
const (
	SubscriptionSigned    = "signed"
	SubscriptionNotSigned = "not signed"
)

// Subscription представляет собой связь пользователя с тарифным планом.
// Подписка создаётся в статусе signed; при отмене или смене плана
// переводится в not signed, строки при этом не удаляются.
type Subscription struct {
	ID     int    `json:"id"`      // Уникальный идентификатор подписки
	Status string `json:"status"`  // Статус подписки: signed или not signed
	UserID int    `json:"user_id"` // Идентификатор пользователя
	PlanID int    `json:"plan_id"` // Идентификатор тарифного плана
}

// DummySubscription используется для приёма данных из JSON-запроса
// при создании или обновлении подписки администратором.
type DummySubscription struct {
	Status string `json:"status" validate:"required,oneof=signed 'not signed'"`
	UserID int    `json:"user_id" validate:"required,gt=0"`
	PlanID int    `json:"plan_id" validate:"required,gt=0"`
}
