// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// Maker определяет интерфейс выпуска и разбора токенов, MakerImpl —
// конкретную реализацию на HMAC-SHA256 с секретным ключом из конфигурации.
package jwt

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с указанной ролью.
	GenerateToken(username, role string) (string, error)
	// ParseToken разбирает токен, проверяет подпись и срок действия
	// и возвращает *CustomClaims.
	ParseToken(tokenStr string) (*CustomClaims, error)
	// Verify возвращает true, если токен подписан, не истёк
	// и выписан на ожидаемого пользователя.
	Verify(tokenStr, expectedSubject string) bool
	// ExtractSubject возвращает имя пользователя из токена без проверки
	// срока действия. Подпись при этом обязана сходиться.
	ExtractSubject(tokenStr string) (string, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey []byte        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl. Секретный ключ передаётся
// в кодировке base64, как он хранится в конфигурации.
func NewMaker(secretKeyBase64 string, ttl time.Duration) (*MakerImpl, error) {
	const op = "jwt.NewMaker"
	key, err := base64.StdEncoding.DecodeString(secretKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &MakerImpl{
		secretKey: key,
		tokenTTL:  ttl,
	}, nil
}

// GenerateToken выпускает JWT токен с subject = username и ролью в claims,
// подписывая его секретным ключом. Время жизни токена определяется tokenTTL.
func (j *MakerImpl) GenerateToken(username, role string) (string, error) {
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ParseToken разбирает JWT токен, проверяет его подпись и срок действия,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, j.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}

// Verify проверяет токен и сверяет subject с ожидаемым именем пользователя.
// Любая ошибка разбора трактуется как невалидный токен.
func (j *MakerImpl) Verify(tokenStr, expectedSubject string) bool {
	claims, err := j.ParseToken(tokenStr)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

// ExtractSubject возвращает subject токена, не проверяя срок действия.
// Используется шлюзом аутентификации, чтобы узнать, чей статус аккаунта
// перепроверять, в том числе для уже истёкших токенов.
func (j *MakerImpl) ExtractSubject(tokenStr string) (string, error) {
	const op = "jwt.ExtractSubject"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, j.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return "", fmt.Errorf("%s: invalid token", op)
	}
	return claims.Subject, nil
}

func (j *MakerImpl) keyFunc(_ *jwt.Token) (any, error) {
	return j.secretKey, nil
}
