package domain

import "time"

// Session authenticated caller. Created at login, destroyed at logout or expiry.
type Session struct {
	Token     string
	Username  string
	Role      string
	ExpiresAt time.Time // zero means the backend did not report an expiry
}

// IsAdmin returns true for administrator sessions
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// IsExpired returns true if the session expiry has passed
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionFacts per-session convenience values, not durable
type SessionFacts struct {
	Username        string
	LastCinemaIndex *int
	LastDate        *time.Time
	ExpiresAt       time.Time
}

// ShowtimeDraft showtime submitted for creation
type ShowtimeDraft struct {
	MovieID    string
	TheaterID  string
	StartsAt   time.Time
	RepeatDays int
	IsReleased bool
}
