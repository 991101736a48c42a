package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
)

// Service сервис сессий: создается при логине, уничтожается при выходе или истечении
type Service struct {
	backend      AuthBackend
	facts        FactsCleaner
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
// facts может быть nil
func NewService(backend AuthBackend, facts FactsCleaner, logger Logger) *Service {
	return &Service{
		backend:      backend,
		facts:        facts,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login аутентифицирует пользователя в backend и создает сессию
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	s.logger.Info("Login: username=%s", username)

	// 1. Валидация
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	// 2. Получаем токен
	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, cinemaapi.ErrInvalidCredentials) {
			s.logger.Warn("Login: invalid credentials for username=%s", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: backend login failed for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: failed to login: %v", ErrInternal, err)
	}

	// 3. Строим сессию по токену
	session, err := s.Resolve(ctx, token)
	if err != nil {
		s.logger.Error("Login: failed to resolve fresh token for username=%s: %v", username, err)
		return nil, err
	}

	s.logger.Info("Login: session created for username=%s, role=%s", session.Username, session.Role)
	return session, nil
}

// Resolve строит сессию по Bearer-токену
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	// 1. Истекшие токены отклоняем без запроса в backend
	expiresAt := tokenExpiry(token)
	if !expiresAt.IsZero() && !s.timeProvider.Now().Before(expiresAt) {
		return nil, ErrSessionExpired
	}

	// 2. Получаем пользователя
	user, err := s.backend.GetMe(ctx, token)
	if err != nil {
		if errors.Is(err, cinemaapi.ErrUnauthorized) || errors.Is(err, cinemaapi.ErrForbidden) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("Resolve: failed to get current user: %v", err)
		return nil, fmt.Errorf("%w: failed to get current user: %v", ErrInternal, err)
	}

	return &domain.Session{
		Token:     token,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout уничтожает сессию: выход в backend и удаление фактов
// Ошибка backend не мешает локальному уничтожению сессии
func (s *Service) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return ErrUnauthorized
	}

	s.logger.Info("Logout: username=%s", session.Username)

	if err := s.backend.Logout(ctx, session.Token); err != nil {
		s.logger.Warn("Logout: backend logout failed for username=%s: %v", session.Username, err)
	}

	if s.facts != nil && session.Username != "" {
		if err := s.facts.Clear(ctx, session.Username); err != nil {
			s.logger.Warn("Logout: failed to clear session facts for username=%s: %v", session.Username, err)
		}
	}

	return nil
}
