package login

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/service/session"
)

type fakeService struct {
	session *domain.Session
	err     error
}

func (f *fakeService) Login(context.Context, string, string) (*domain.Session, error) {
	return f.session, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body)))
	return w
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{session: &domain.Session{
		Token:     "tok",
		Username:  "root",
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
	}}

	w := post(NewHandler(svc, nopLogger{}), `{"username":"root","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.True(t, resp.IsAdmin)
	require.NotNil(t, resp.ExpiresAt)
	assert.Equal(t, "2024-03-05T14:00:00Z", *resp.ExpiresAt)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "missing password", body: `{"username":"root"}`, wantStatus: http.StatusBadRequest},
		{name: "wrong password", body: `{"username":"root","password":"x"}`, err: session.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{
			name:       "backend down",
			body:       `{"username":"root","password":"x"}`,
			err:        fmt.Errorf("%w: failed to login", session.ErrInternal),
			wantStatus: http.StatusBadGateway,
		},
		{name: "unexpected", body: `{"username":"root","password":"x"}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
