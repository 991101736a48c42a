package logout

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

type fakeService struct {
	loggedOut []*domain.Session
	err       error
}

func (f *fakeService) Logout(_ context.Context, s *domain.Session) error {
	f.loggedOut = append(f.loggedOut, s)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	alice := &domain.Session{Username: "alice", Token: "tok"}

	t.Run("logs out", func(t *testing.T) {
		svc := &fakeService{}
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		r = r.WithContext(middleware.WithSession(r.Context(), alice))
		w := httptest.NewRecorder()

		NewHandler(svc, nopLogger{}).Handle(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []*domain.Session{alice}, svc.loggedOut)
	})

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHandler(&fakeService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r = r.WithContext(middleware.WithSession(r.Context(), alice))
		w := httptest.NewRecorder()

		NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}).Handle(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
