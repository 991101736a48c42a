package login

import (
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string  `json:"token"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	IsAdmin   bool    `json:"isAdmin"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *domain.Session) *LoginResponse {
	resp := &LoginResponse{
		Token:    s.Token,
		Username: s.Username,
		Role:     s.Role,
		IsAdmin:  s.IsAdmin(),
	}
	if !s.ExpiresAt.IsZero() {
		expiresAt := s.ExpiresAt.UTC().Format(time.RFC3339)
		resp.ExpiresAt = &expiresAt
	}
	return resp
}
