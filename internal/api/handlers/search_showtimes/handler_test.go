package search_showtimes

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
	searchShowtimes "github.com/m04kA/SMC-ShowtimeService/internal/usecase/search_showtimes"
)

type fakeUseCase struct {
	got  *searchShowtimes.Request
	resp *searchShowtimes.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *searchShowtimes.Request) (*searchShowtimes.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleResponse() *searchShowtimes.Response {
	return &searchShowtimes.Response{
		Showtimes: []domain.Showtime{
			{
				ID:          "s1",
				Movie:       &domain.MovieRef{ID: "m1", Name: "Dune", DurationMinutes: 155},
				Theater:     &domain.TheaterRef{ID: "t1", Number: 2, Cinema: &domain.CinemaRef{ID: "c1", Name: "Central"}},
				StartsAt:    time.Date(2024, 3, 5, 9, 5, 0, 0, time.UTC),
				SeatsBooked: 3,
				IsReleased:  true,
			},
		},
		Facets: searchShowtimes.Facets{
			Theaters: []searchShowtimes.TheaterOption{{Value: 2, Label: "2"}},
		},
		Warnings: []searchShowtimes.DataIntegrityWarning{{ShowtimeID: "bad", Reason: "missing movie reference"}},
		Total:    2,
	}
}

func doRequest(h *Handler, body string, session *domain.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/showtimes/search", strings.NewReader(body))
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: sampleResponse()}
	h := NewHandler(uc, time.UTC, nopLogger{})
	admin := &domain.Session{Username: "root", Role: domain.RoleAdmin}

	body := `{
		"criteria": {
			"cinemaIds": ["c1"],
			"dates": ["2024-03-05"],
			"times": ["09:05"],
			"dateFrom": "01 Mar 2024",
			"timeTo": "23 : 00",
			"date": "Today",
			"release": "released"
		},
		"sort": {"key": "time", "direction": -1}
	}`
	w := doRequest(h, body, admin)
	require.Equal(t, http.StatusOK, w.Code)

	// Запрос в use case
	require.NotNil(t, uc.got)
	assert.Same(t, admin, uc.got.Session)
	assert.Equal(t, []string{"05 Mar 2024"}, uc.got.Criteria.Dates)
	assert.Equal(t, []string{"09 : 05"}, uc.got.Criteria.Times)
	require.NotNil(t, uc.got.Criteria.DateFrom)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *uc.got.Criteria.DateFrom)
	require.NotNil(t, uc.got.Criteria.TimeTo)
	assert.Equal(t, "23 : 00", *uc.got.Criteria.TimeTo)
	assert.Equal(t, domain.DateBucketToday, uc.got.Criteria.DateBucket)
	assert.Equal(t, domain.ReleaseBucketReleased, uc.got.Criteria.ReleaseBucket)
	assert.Equal(t, domain.SortState{Key: domain.SortByTime, Direction: domain.SortDescending}, uc.got.Sort)

	// Ответ
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Showtimes, 1)
	assert.Equal(t, "05 Mar 2024", resp.Showtimes[0].Date)
	assert.Equal(t, "09 : 05", resp.Showtimes[0].Time)
	assert.Equal(t, "Central", resp.Showtimes[0].Theater.Cinema.Name)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Warnings, 1)
	assert.NotNil(t, resp.Facets.Cinemas)
}

func TestHandler_Anonymous(t *testing.T) {
	uc := &fakeUseCase{resp: &searchShowtimes.Response{}}
	h := NewHandler(uc, time.UTC, nopLogger{})

	w := doRequest(h, `{}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, uc.got.Session)
	assert.True(t, uc.got.Criteria.IsEmpty())
	assert.JSONEq(t, `[]`, mustField(t, w.Body.Bytes(), "showtimes"))
}

func TestHandler_Selection(t *testing.T) {
	resp := sampleResponse()
	resp.Selected = []string{"s1"}
	uc := &fakeUseCase{resp: resp}
	h := NewHandler(uc, time.UTC, nopLogger{})

	body := `{
		"criteria": {"dates": ["2024-03-05"]},
		"sort": {"key": "time", "direction": 1},
		"selection": {
			"ids": ["s1", "s9"],
			"criteria": {"dates": ["05 Mar 2024"]},
			"sort": {"key": "time", "direction": 1}
		}
	}`
	w := doRequest(h, body, &domain.Session{Role: domain.RoleAdmin})
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, uc.got.Selection)
	assert.Equal(t, []string{"s1", "s9"}, uc.got.Selection.IDs)
	// Обе даты приводятся к одной метке, отметки не сбрасываются из-за формата
	assert.True(t, uc.got.Selection.Criteria.Equal(uc.got.Criteria))
	assert.True(t, uc.got.Selection.Sort.Equal(uc.got.Sort))

	assert.JSONEq(t, `["s1"]`, mustField(t, w.Body.Bytes(), "selected"))
	assert.JSONEq(t, `false`, mustField(t, w.Body.Bytes(), "selectionCleared"))
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "unparsable date bound", body: `{"criteria":{"dateFrom":"yesterday"}}`, wantStatus: http.StatusBadRequest},
		{name: "unparsable time", body: `{"criteria":{"times":["25:99"]}}`, wantStatus: http.StatusBadRequest},
		{name: "unknown bucket", body: `{"criteria":{"date":"someday"}}`, wantStatus: http.StatusBadRequest},
		{name: "direction out of range", body: `{"sort":{"key":"time","direction":2}}`, wantStatus: http.StatusBadRequest},
		{name: "unparsable selection date", body: `{"selection":{"ids":["s1"],"criteria":{"dates":["soon"]}}}`, wantStatus: http.StatusBadRequest},
		{name: "empty selection id", body: `{"selection":{"ids":[""]}}`, wantStatus: http.StatusBadRequest},
		{
			name:       "invalid sort key",
			body:       `{"sort":{"key":"price","direction":1}}`,
			ucErr:      fmt.Errorf("%w: unknown sort key", searchShowtimes.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{name: "token rejected", body: `{}`, ucErr: searchShowtimes.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{
			name:       "backend failure",
			body:       `{}`,
			ucErr:      fmt.Errorf("%w: failed to list showtimes: timeout", searchShowtimes.ErrInternal),
			wantStatus: http.StatusBadGateway,
		},
		{name: "unexpected", body: `{}`, ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, time.UTC, nopLogger{})
			w := doRequest(h, tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func mustField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	return string(m[field])
}
