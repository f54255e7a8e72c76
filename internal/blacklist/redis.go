package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/telecom-provider/internal/config"
)

// revokedMarker — значение-заглушка: смысл несёт сам ключ и его TTL.
const revokedMarker = "revoked"

// RedisBlacklist реализует реестр отозванных токенов поверх Redis.
// Общий для всех экземпляров сервиса: отзыв, выполненный одним экземпляром,
// виден остальным.
type RedisBlacklist struct {
	db        *redis.Client
	retention time.Duration
}

// InitServer подключается к Redis и возвращает готовый реестр.
// retention должен быть не меньше времени жизни токена, иначе отозванный
// токен переживёт запись в реестре и снова станет валидным.
func InitServer(ctx context.Context, cfg config.RedisConnection, retention time.Duration) (*RedisBlacklist, error) {
	const op = "blacklist.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisBlacklist{db: db, retention: retention}, nil
}

// Revoke помечает токен отозванным на время retention.
func (b *RedisBlacklist) Revoke(ctx context.Context, token string) error {
	const op = "blacklist.Revoke"
	if err := b.db.Set(ctx, token, revokedMarker, b.retention).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsRevoked проверяет наличие токена в реестре.
func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	const op = "blacklist.IsRevoked"
	n, err := b.db.Exists(ctx, token).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

// Close закрывает соединение с Redis.
func (b *RedisBlacklist) Close() error {
	return b.db.Close()
}
