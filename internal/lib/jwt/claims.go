// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// CustomClaims расширяет стандартные claims JWT, добавляя роль пользователя.
// Subject стандартных claims используется как имя пользователя.
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	Role                 string `json:"role"` // Роль пользователя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (Subject, ExpiresAt, IssuedAt и пр.)
}
