package add_showtime

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

	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	addShowtime "github.com/m04kA/SMC-ShowtimeService/internal/usecase/add_showtime"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

type fakeUseCase struct {
	got  *addShowtime.Request
	resp *addShowtime.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *addShowtime.Request) (*addShowtime.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	defaults = Defaults{AutoAdvance: true, GapMinutes: 10, Rounding: domain.RoundingFive}
	admin    = &domain.Session{Username: "root", Role: domain.RoleAdmin}
)

func post(h *Handler, body string, session *domain.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/showtimes", strings.NewReader(body))
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &addShowtime.Response{
		StartsAt:   time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC),
		RepeatDays: 3,
		Next: &addShowtime.NextPrefill{
			Time: types.TimeString("21:35"),
			Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}}
	h := NewHandler(uc, defaults, time.UTC, nopLogger{})

	w := post(h, `{"theaterId":"t1","movieId":"m1","date":"2024-03-05","time":"18:30","repeat":3,"gap":"00:20"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "t1", uc.got.TheaterID)
	assert.Equal(t, 3, uc.got.RepeatDays)
	assert.True(t, uc.got.AutoAdvance)
	assert.Equal(t, 0, uc.got.GapHours)
	assert.Equal(t, 20, uc.got.GapMinutes)
	assert.Equal(t, domain.RoundingFive, uc.got.Rounding)
	assert.Equal(t, types.TimeString("18:30"), uc.got.StartTime)

	var resp AddShowtimeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Repeat)
	require.NotNil(t, resp.Next)
	assert.Equal(t, "21:35", resp.Next.Time)
	assert.Equal(t, "2024-03-05", resp.Next.Date)
}

func TestHandler_RepeatDefaultsToOneDay(t *testing.T) {
	uc := &fakeUseCase{resp: &addShowtime.Response{RepeatDays: 1}}
	h := NewHandler(uc, defaults, time.UTC, nopLogger{})

	w := post(h, `{"theaterId":"t1","movieId":"m1","date":"2024-03-05","time":"18:30","autoAdvance":false}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, uc.got.RepeatDays)
	assert.False(t, uc.got.AutoAdvance)
	assert.NotContains(t, w.Body.String(), `"next"`)
}

func TestHandler_Errors(t *testing.T) {
	valid := `{"theaterId":"t1","movieId":"m1","date":"2024-03-05","time":"18:30"}`

	tests := []struct {
		name       string
		body       string
		session    *domain.Session
		ucErr      error
		wantStatus int
	}{
		{name: "no session", body: valid, wantStatus: http.StatusUnauthorized},
		{name: "malformed", body: `{`, session: admin, wantStatus: http.StatusBadRequest},
		{name: "missing theater", body: `{"movieId":"m1","date":"2024-03-05","time":"18:30"}`, session: admin, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: `{"theaterId":"t1","date":"2024-03-05","time":"25:00"}`, session: admin, wantStatus: http.StatusBadRequest},
		{name: "not admin", body: valid, session: admin, ucErr: addShowtime.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "no movie", body: valid, session: admin, ucErr: addShowtime.ErrMovieNotSelected, wantStatus: http.StatusBadRequest},
		{name: "unknown movie", body: valid, session: admin, ucErr: addShowtime.ErrMovieNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "repeat out of range",
			body:       valid,
			session:    admin,
			ucErr:      fmt.Errorf("%w: repeat", addShowtime.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "backend failure",
			body:       valid,
			session:    admin,
			ucErr:      fmt.Errorf("%w: failed to create showtime", addShowtime.ErrInternal),
			wantStatus: http.StatusBadGateway,
		},
		{name: "unexpected", body: valid, session: admin, ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, defaults, time.UTC, nopLogger{})
			w := post(h, tt.body, tt.session)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
