package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
)

type fakeBackend struct {
	token     string
	loginErr  error
	user      *cinemaapi.User
	meErr     error
	meCalls   int
	logoutErr error
	loggedOut []string
}

func (f *fakeBackend) Login(context.Context, string, string) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeBackend) GetMe(context.Context, string) (*cinemaapi.User, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.user, nil
}

func (f *fakeBackend) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return f.logoutErr
}

type fakeFacts struct{ cleared []string }

func (f *fakeFacts) Clear(_ context.Context, username string) error {
	f.cleared = append(f.cleared, username)
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
		"iat": now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestService_Login(t *testing.T) {
	exp := now.Add(2 * time.Hour)
	backend := &fakeBackend{
		token: signedToken(t, exp),
		user:  &cinemaapi.User{Username: "admin", Role: domain.RoleAdmin},
	}
	svc := NewService(backend, nil, nopLogger{}).WithTimeProvider(fixedTime{t: now})

	session, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, backend.token, session.Token)
	assert.Equal(t, "admin", session.Username)
	assert.True(t, session.IsAdmin())
	assert.Equal(t, exp.Unix(), session.ExpiresAt.Unix())
}

func TestService_Login_Errors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		backend  *fakeBackend
		wantErr  error
	}{
		{name: "empty username", username: " ", password: "x", backend: &fakeBackend{}, wantErr: ErrInvalidInput},
		{name: "empty password", username: "u", backend: &fakeBackend{}, wantErr: ErrInvalidInput},
		{
			name:     "wrong password",
			username: "u",
			password: "x",
			backend:  &fakeBackend{loginErr: cinemaapi.ErrInvalidCredentials},
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "backend down",
			username: "u",
			password: "x",
			backend:  &fakeBackend{loginErr: cinemaapi.ErrInternal},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.backend, nil, nopLogger{})

			session, err := svc.Login(context.Background(), tt.username, tt.password)

			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	t.Run("expired token is rejected without backend call", func(t *testing.T) {
		backend := &fakeBackend{user: &cinemaapi.User{Username: "u"}}
		svc := NewService(backend, nil, nopLogger{}).WithTimeProvider(fixedTime{t: now})

		_, err := svc.Resolve(context.Background(), signedToken(t, now.Add(-time.Minute)))

		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Zero(t, backend.meCalls)
	})

	t.Run("opaque token has no expiry", func(t *testing.T) {
		backend := &fakeBackend{user: &cinemaapi.User{Username: "u", Role: domain.RoleUser}}
		svc := NewService(backend, nil, nopLogger{})

		session, err := svc.Resolve(context.Background(), "opaque-token")

		require.NoError(t, err)
		assert.True(t, session.ExpiresAt.IsZero())
		assert.False(t, session.IsAdmin())
	})

	t.Run("rejected by backend", func(t *testing.T) {
		svc := NewService(&fakeBackend{meErr: cinemaapi.ErrUnauthorized}, nil, nopLogger{})

		_, err := svc.Resolve(context.Background(), "tok")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		svc := NewService(&fakeBackend{}, nil, nopLogger{})

		_, err := svc.Resolve(context.Background(), "")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestService_Logout(t *testing.T) {
	backend := &fakeBackend{logoutErr: errors.New("backend down")}
	facts := &fakeFacts{}
	svc := NewService(backend, facts, nopLogger{})

	err := svc.Logout(context.Background(), &domain.Session{Token: "tok", Username: "admin"})

	require.NoError(t, err)
	assert.Equal(t, []string{"tok"}, backend.loggedOut)
	assert.Equal(t, []string{"admin"}, facts.cleared)

	assert.ErrorIs(t, svc.Logout(context.Background(), nil), ErrUnauthorized)
}
