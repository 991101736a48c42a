package search_showtimes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
)

type fakeSource struct {
	showtimes         []domain.Showtime
	err               error
	calls             int
	token             string
	includeUnreleased bool
}

func (f *fakeSource) ListShowtimes(_ context.Context, token string, includeUnreleased bool) ([]domain.Showtime, error) {
	f.calls++
	f.token = token
	f.includeUnreleased = includeUnreleased
	if f.err != nil {
		return nil, f.err
	}
	return f.showtimes, nil
}

type fakeCache struct {
	entries  map[string][]domain.Showtime
	getErr   error
	setCalls int
}

func (f *fakeCache) Get(_ context.Context, key string) ([]domain.Showtime, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	st, ok := f.entries[key]
	return st, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, showtimes []domain.Showtime) error {
	if f.entries == nil {
		f.entries = map[string][]domain.Showtime{}
	}
	f.setCalls++
	f.entries[key] = showtimes
	return nil
}

type fakeMetrics struct {
	warnings int
	hits     int
	misses   int
}

func (f *fakeMetrics) IncDataIntegrityWarning() { f.warnings++ }

func (f *fakeMetrics) IncSnapshotCache(hit bool) {
	if hit {
		f.hits++
		return
	}
	f.misses++
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	snapshot := append(fixture(), domain.Showtime{ID: "orphan", StartsAt: now})
	source := &fakeSource{showtimes: snapshot}
	metrics := &fakeMetrics{}
	uc := NewUseCase(source, nil, metrics, time.UTC, nopLogger{}).WithTimeProvider(fixedTime{t: now})

	resp, err := uc.Execute(context.Background(), &Request{
		Session:  &domain.Session{Token: "tok", Role: domain.RoleAdmin},
		Criteria: domain.FilterCriteria{CinemaIDs: []string{"c1"}},
		Sort:     domain.SortState{Key: domain.SortByTime, Direction: domain.SortAscending},
	})
	require.NoError(t, err)

	assert.True(t, source.includeUnreleased)
	assert.Equal(t, "tok", source.token)
	assert.Equal(t, []string{"s3", "s1"}, ids(resp.Showtimes))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, []DataIntegrityWarning{{ShowtimeID: "orphan", Reason: "missing movie reference"}}, resp.Warnings)
	assert.Equal(t, 1, metrics.warnings)

	// Фасеты не сужаются выбранным фильтром
	assert.Len(t, resp.Facets.Cinemas, 2)
	assert.Len(t, resp.Facets.Movies, 2)
}

func TestUseCase_Execute_Selection(t *testing.T) {
	criteria := domain.FilterCriteria{CinemaIDs: []string{"c1"}}
	byTime := domain.SortState{Key: domain.SortByTime, Direction: domain.SortAscending}
	selection := &Selection{IDs: []string{"s1", "s2", "s3"}, Criteria: criteria, Sort: byTime}

	tests := []struct {
		name        string
		req         *Request
		wantIDs     []string
		wantCleared bool
	}{
		{
			name:    "no selection",
			req:     &Request{Criteria: criteria, Sort: byTime},
			wantIDs: []string{},
		},
		{
			name:    "same criteria keeps visible selection in view order",
			req:     &Request{Criteria: domain.FilterCriteria{CinemaIDs: []string{"c1"}}, Sort: byTime, Selection: selection},
			wantIDs: []string{"s3", "s1"},
		},
		{
			name:        "criteria change clears selection",
			req:         &Request{Criteria: domain.FilterCriteria{CinemaIDs: []string{"c1", "c2"}}, Sort: byTime, Selection: selection},
			wantIDs:     []string{},
			wantCleared: true,
		},
		{
			name:        "sort toggle clears selection",
			req:         &Request{Criteria: criteria, Sort: byTime.Toggle(domain.SortByTime), Selection: selection},
			wantIDs:     []string{},
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeSource{showtimes: fixture()}, nil, nil, time.UTC, nopLogger{}).
				WithTimeProvider(fixedTime{t: now})

			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, resp.Selected)
			assert.Equal(t, tt.wantCleared, resp.SelectionCleared)
		})
	}
}

func TestUseCase_Execute_AnonymousUsesPublicSnapshot(t *testing.T) {
	source := &fakeSource{showtimes: fixture()}
	uc := NewUseCase(source, nil, nil, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.False(t, source.includeUnreleased)
	assert.Empty(t, source.token)
}

func TestUseCase_Execute_Cache(t *testing.T) {
	source := &fakeSource{showtimes: fixture()}
	cache := &fakeCache{}
	metrics := &fakeMetrics{}
	uc := NewUseCase(source, cache, metrics, time.UTC, nopLogger{})
	req := &Request{Session: &domain.Session{Token: "tok", Role: domain.RoleUser}}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 1, metrics.misses)
	assert.Equal(t, 1, metrics.hits)
	assert.Contains(t, cache.entries, SnapshotKeyPublic)

	req.Refresh = true
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestUseCase_Execute_CacheFailureFallsBackToSource(t *testing.T) {
	source := &fakeSource{showtimes: fixture()}
	uc := NewUseCase(source, &fakeCache{getErr: errors.New("redis down")}, nil, time.UTC, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Len(t, resp.Showtimes, 4)
	assert.Equal(t, 1, source.calls)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  *fakeSource
		req     *Request
		wantErr error
	}{
		{
			name:    "unknown sort key",
			source:  &fakeSource{},
			req:     &Request{Sort: domain.SortState{Key: "price", Direction: domain.SortAscending}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad direction",
			source:  &fakeSource{},
			req:     &Request{Sort: domain.SortState{Key: domain.SortByDate, Direction: 3}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "backend rejects token",
			source:  &fakeSource{err: cinemaapi.ErrUnauthorized},
			req:     &Request{Session: &domain.Session{Token: "old", Role: domain.RoleAdmin}},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "backend failure",
			source:  &fakeSource{err: cinemaapi.ErrInternal},
			req:     &Request{},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.source, nil, nil, time.UTC, nopLogger{})

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
