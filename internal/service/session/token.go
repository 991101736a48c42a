package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry читает exp из JWT без проверки подписи: подпись проверяет backend
// Возвращает нулевое время, если токен не JWT или exp отсутствует
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
