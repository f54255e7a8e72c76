// Package repository реализует хранилище данных на основе PostgreSQL
// для администрирования оператора связи: пользователи, справочники ролей
// и статусов, тарифы, планы, акции и подписки.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы и обработчики сопоставляют их
// с HTTP-статусами, не заглядывая в SQL-детали.
var (
	// ErrNotFound — запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrConflict — нарушение уникальности (дубликат поля или вторая
	// активная подписка).
	ErrConflict = errors.New("conflict")
	// ErrAlreadySubscribed — у пользователя уже есть активная подписка
	// именно на этот план.
	ErrAlreadySubscribed = errors.New("already subscribed")
)

// Коды ошибок PostgreSQL, которые хранилище переводит в свои ошибки.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с доменными сущностями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// wrapErr переводит низкоуровневые ошибки в ошибки хранилища:
// пустой результат и нарушение внешнего ключа — в ErrNotFound,
// нарушение уникальности — в ErrConflict.
func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
