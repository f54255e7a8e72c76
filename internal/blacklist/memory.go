package blacklist

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryBlacklist реализует реестр отозванных токенов в памяти процесса.
// Подходит только для развёртывания в один экземпляр; записи вытесняются
// по TTL, чтобы ограничить потребление памяти.
type MemoryBlacklist struct {
	c *gocache.Cache
}

// NewMemory создаёт реестр в памяти с указанным retention TTL.
func NewMemory(retention time.Duration) *MemoryBlacklist {
	return &MemoryBlacklist{c: gocache.New(retention, time.Minute)}
}

// Revoke помечает токен отозванным.
func (b *MemoryBlacklist) Revoke(_ context.Context, token string) error {
	b.c.SetDefault(token, revokedMarker)
	return nil
}

// IsRevoked проверяет наличие токена в реестре.
func (b *MemoryBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	_, found := b.c.Get(token)
	return found, nil
}
