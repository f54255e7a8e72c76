// Package models содержит доменные структуры каталога оператора:
// тарифы, тарифные планы, акции и их связи.
package models

import "time"

// Tariff представляет тариф с лимитами трафика и минут.
type Tariff struct {
	ID          int     `json:"id"`           // Уникальный идентификатор тарифа
	Name        string  `json:"name"`         // Название тарифа (уникальное)
	Description string  `json:"description"`  // Описание тарифа
	MonthlyCost float64 `json:"monthly_cost"` // Стоимость в месяц
	DataLimit   float64 `json:"data_limit"`   // Лимит трафика, мегабайты
	VoiceLimit  float64 `json:"voice_limit"`  // Лимит минут
}

// DummyTariff используется для приёма данных из JSON-запроса.
type DummyTariff struct {
	Name        string  `json:"name" validate:"required,min=2,max=50"`
	Description string  `json:"description" validate:"max=50"`
	MonthlyCost float64 `json:"monthly_cost" validate:"required,gte=4.99"`
	DataLimit   float64 `json:"data_limit" validate:"required,gte=50,lte=100000"`
	VoiceLimit  float64 `json:"voice_limit" validate:"required,gte=50,lte=10000"`
}

// Plan представляет тарифный план — тариф, доступный для подключения
// в ограниченный период времени.
type Plan struct {
	ID          int       `json:"id"`          // Уникальный идентификатор плана
	Name        string    `json:"name"`        // Название плана (уникальное)
	Description string    `json:"description"` // Описание плана
	StartDate   time.Time `json:"start_date"`  // Дата начала действия
	EndDate     time.Time `json:"end_date"`    // Дата окончания действия
	TariffID    int       `json:"tariff_id"`   // Идентификатор тарифа
}

// DummyPlan используется для приёма данных из JSON-запроса.
// Даты приходят строками в формате 02-01-2006.
type DummyPlan struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"max=50"`
	StartDate   string `json:"start_date" validate:"required,datetime=02-01-2006"`
	EndDate     string `json:"end_date" validate:"required,datetime=02-01-2006"`
	TariffID    int    `json:"tariff_id" validate:"required,gt=0"`
}

// Promotion представляет акцию со скидкой на тарифы.
type Promotion struct {
	ID                 int       `json:"id"`                  // Уникальный идентификатор акции
	Title              string    `json:"title"`               // Название акции (уникальное)
	Description        string    `json:"description"`         // Описание акции
	DiscountPercentage float64   `json:"discount_percentage"` // Размер скидки в процентах
	StartDate          time.Time `json:"start_date"`          // Дата начала действия
	EndDate            time.Time `json:"end_date"`            // Дата окончания действия
}

// DummyPromotion используется для приёма данных из JSON-запроса.
type DummyPromotion struct {
	Title              string  `json:"title" validate:"required,max=100"`
	Description        string  `json:"description" validate:"max=100"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"required,gte=5"`
	StartDate          string  `json:"start_date" validate:"required,datetime=02-01-2006"`
	EndDate            string  `json:"end_date" validate:"required,datetime=02-01-2006"`
}

// PromotionTariff представляет применение акции к тарифу.
type PromotionTariff struct {
	ID          int `json:"id"`           // Уникальный идентификатор связи
	PromotionID int `json:"promotion_id"` // Идентификатор акции
	TariffID    int `json:"tariff_id"`    // Идентификатор тарифа
}
