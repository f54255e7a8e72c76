// Package blacklist реализует реестр отозванных JWT токенов.
//
// Отозванный токен (logout) должен отклоняться до конца своего естественного
// срока действия, поэтому запись хранится с TTL не меньше времени жизни
// токена. Реестр внедряется зависимостью: в многоэкземплярном развёртывании
// используется Redis, для одного экземпляра достаточно реестра в памяти.
package blacklist

import "context"

// Blacklist описывает интерфейс реестра отозванных токенов.
// Записи только добавляются, поэтому реализации обязаны быть безопасными
// для конкурентного чтения и записи из обработчиков запросов.
type Blacklist interface {
	// Revoke помечает токен отозванным на время retention TTL.
	Revoke(ctx context.Context, token string) error
	// IsRevoked проверяет наличие токена в реестре за O(1).
	IsRevoked(ctx context.Context, token string) (bool, error)
}
