package cinemaapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recorder struct {
	calls map[string]int
}

func (r *recorder) IncBackendRequest(operation string, err error) {
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	key := operation + ":ok"
	if err != nil {
		key = operation + ":error"
	}
	r.calls[key]++
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nopLogger{})
}

const showtimesPayload = `{
  "success": true,
  "data": [
    {
      "_id": "s1",
      "movie": {"_id": "m1", "name": "Dune", "length": 155},
      "theater": {"_id": "t1", "number": 3, "cinema": {"_id": "c1", "name": "Central"}},
      "showtime": "2024-03-05T18:30:00Z",
      "seats": [{"row": "A", "number": 1}, {"row": "A", "number": 2}],
      "isRelease": true
    },
    {
      "_id": "s2",
      "movie": "m2",
      "theater": {"_id": "t2", "number": 1, "cinema": null},
      "showtime": "2024-03-06T10:00:00Z",
      "seats": [],
      "isRelease": false
    }
  ]
}`

func TestClient_ListShowtimes(t *testing.T) {
	var gotPath, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(showtimesPayload))
	})

	showtimes, err := client.ListShowtimes(context.Background(), "tok", true)
	require.NoError(t, err)

	assert.Equal(t, "/showtime/unreleased", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, showtimes, 2)

	first := showtimes[0]
	assert.Equal(t, "s1", first.ID)
	require.NotNil(t, first.Movie)
	assert.Equal(t, 155, first.Movie.DurationMinutes)
	require.NotNil(t, first.Theater)
	require.NotNil(t, first.Theater.Cinema)
	assert.Equal(t, "Central", first.Theater.Cinema.Name)
	assert.Equal(t, 2, first.SeatsBooked)
	assert.True(t, first.IsReleased)

	second := showtimes[1]
	assert.Nil(t, second.Movie, "unpopulated movie reference stays nil")
	require.NotNil(t, second.Theater)
	assert.Nil(t, second.Theater.Cinema)
	assert.Equal(t, 0, second.SeatsBooked)
}

func TestClient_ListShowtimes_PublicPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	showtimes, err := client.ListShowtimes(context.Background(), "", false)
	require.NoError(t, err)
	assert.Empty(t, showtimes)
	assert.Equal(t, "/showtime", gotPath)
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{name: "success", status: http.StatusOK, body: `{"success":true,"token":"abc"}`, want: "abc"},
		{name: "bad request", status: http.StatusBadRequest, body: `"Invalid"`, wantErr: ErrInvalidCredentials},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantErr: ErrInvalidCredentials},
		{name: "empty token", status: http.StatusOK, body: `{"success":true}`, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var body loginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "admin", body.Username)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			token, err := client.Login(context.Background(), "admin", "secret")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestClient_GetMovie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"_id":"m1","name":"Dune","length":155},{"_id":"m2","name":"Up","length":96}]}`))
	})

	movie, err := client.GetMovie(context.Background(), "m2")
	require.NoError(t, err)
	assert.Equal(t, 96, movie.DurationMinutes)

	_, err = client.GetMovie(context.Background(), "m3")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestClient_ShowtimeMutations(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		calls = append(calls, call{method: r.Method, path: r.URL.Path, body: string(raw)})
		if r.URL.Path == "/showtime/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	rec := &recorder{}
	client.WithMetrics(rec)

	ctx := context.Background()
	require.NoError(t, client.SetShowtimeRelease(ctx, "tok", "s1", true))
	require.NoError(t, client.DeleteShowtime(ctx, "tok", "s2"))
	assert.ErrorIs(t, client.DeleteShowtime(ctx, "tok", "missing"), ErrShowtimeNotFound)

	require.Len(t, calls, 3)
	assert.Equal(t, call{method: http.MethodPut, path: "/showtime/s1", body: `{"isRelease":true}`}, calls[0])
	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, "/showtime/s2", calls[1].path)

	assert.Equal(t, 1, rec.calls["update_showtime:ok"])
	assert.Equal(t, 1, rec.calls["delete_showtime:ok"])
	assert.Equal(t, 1, rec.calls["delete_showtime:error"])
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusBadGateway, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.ListShowtimes(context.Background(), "tok", true)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
