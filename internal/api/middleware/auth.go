package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/service/session"
)

const (
	msgMissingToken   = "требуется авторизация"
	msgInvalidToken   = "недействительный токен"
	msgSessionExpired = "сессия истекла, войдите снова"
	msgBackendFailed  = "сервис кинотеатров недоступен"
)

// SessionResolver восстановление сессии по Bearer-токену
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type sessionKey struct{}

// Auth требует действительную сессию и кладет ее в контекст
func Auth(resolver SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.BearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			s, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				respondResolveError(w, r, err, logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// OptionalAuth кладет сессию в контекст, если токен передан; без токена запрос анонимный
func OptionalAuth(resolver SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				respondResolveError(w, r, err, logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// WithSession возвращает контекст с сессией
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// GetSession возвращает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return s, ok && s != nil
}

func respondResolveError(w http.ResponseWriter, r *http.Request, err error, logger Logger) {
	switch {
	case errors.Is(err, session.ErrSessionExpired):
		logger.Warn("%s %s - Session expired", r.Method, r.URL.Path)
		handlers.RespondUnauthorized(w, msgSessionExpired)

	case errors.Is(err, session.ErrUnauthorized):
		logger.Warn("%s %s - Token rejected", r.Method, r.URL.Path)
		handlers.RespondUnauthorized(w, msgInvalidToken)

	default:
		logger.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadGateway(w, msgBackendFailed)
	}
}
