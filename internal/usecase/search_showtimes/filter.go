package search_showtimes

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// partition отделяет записи с неполными ссылками, сохраняя порядок остальных
func partition(showtimes []domain.Showtime) ([]domain.Showtime, []DataIntegrityWarning) {
	valid := make([]domain.Showtime, 0, len(showtimes))
	var warnings []DataIntegrityWarning

	for _, st := range showtimes {
		if reason := st.IntegrityIssue(); reason != "" {
			warnings = append(warnings, DataIntegrityWarning{ShowtimeID: st.ID, Reason: reason})
			continue
		}
		valid = append(valid, st)
	}

	return valid, warnings
}

// Filter возвращает сеансы, удовлетворяющие всем заданным измерениям
// Вход должен быть очищен partition
func Filter(showtimes []domain.Showtime, c domain.FilterCriteria, now time.Time, loc *time.Location) []domain.Showtime {
	if c.IsEmpty() {
		return slices.Clone(showtimes)
	}

	today := civilDay(now, loc)
	result := make([]domain.Showtime, 0, len(showtimes))

	for _, st := range showtimes {
		if matches(&st, &c, today, loc) {
			result = append(result, st)
		}
	}

	return result
}

func matches(st *domain.Showtime, c *domain.FilterCriteria, today int, loc *time.Location) bool {
	if len(c.CinemaIDs) > 0 && !slices.Contains(c.CinemaIDs, st.Theater.Cinema.ID) {
		return false
	}
	if len(c.TheaterNumbers) > 0 && !slices.Contains(c.TheaterNumbers, st.Theater.Number) {
		return false
	}
	if len(c.MovieIDs) > 0 && !slices.Contains(c.MovieIDs, st.Movie.ID) {
		return false
	}

	day := civilDay(st.StartsAt, loc)
	if len(c.Dates) > 0 && !slices.Contains(c.Dates, st.DayLabel(loc)) {
		return false
	}
	if c.DateFrom != nil && day < civilDay(*c.DateFrom, loc) {
		return false
	}
	if c.DateTo != nil && day > civilDay(*c.DateTo, loc) {
		return false
	}

	switch c.DateBucket {
	case domain.DateBucketPast:
		if day >= today {
			return false
		}
	case domain.DateBucketToday:
		if day != today {
			return false
		}
	case domain.DateBucketFuture:
		if day <= today {
			return false
		}
	}

	// Время сравнивается строкой: формат "HH : MM" фиксированной ширины
	label := st.TimeLabel(loc)
	if len(c.Times) > 0 && !slices.Contains(c.Times, label) {
		return false
	}
	if c.TimeFrom != nil && label < *c.TimeFrom {
		return false
	}
	if c.TimeTo != nil && label > *c.TimeTo {
		return false
	}

	switch c.ReleaseBucket {
	case domain.ReleaseBucketReleased:
		return st.IsReleased
	case domain.ReleaseBucketUnreleased:
		return !st.IsReleased
	}

	return true
}

// civilDay календарный день как YYYYMMDD в часовом поясе loc
func civilDay(t time.Time, loc *time.Location) int {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
