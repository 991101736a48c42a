package search_showtimes

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// Sort упорядочивает сеансы по активному ключу, сохраняя исходный порядок равных
// Без активного ключа порядок не меняется
func Sort(showtimes []domain.Showtime, state domain.SortState, loc *time.Location) {
	if !state.IsActive() {
		return
	}

	cmp := comparator(state.Key, loc)
	dir := int(state.Direction)

	sort.SliceStable(showtimes, func(i, j int) bool {
		return dir*cmp(&showtimes[i], &showtimes[j]) < 0
	})
}

func comparator(key domain.SortKey, loc *time.Location) func(a, b *domain.Showtime) int {
	switch key {
	case domain.SortByCinema:
		names := collate.New(language.English)
		return func(a, b *domain.Showtime) int {
			return names.CompareString(a.Theater.Cinema.Name, b.Theater.Cinema.Name)
		}
	case domain.SortByTheater:
		return func(a, b *domain.Showtime) int {
			return a.Theater.Number - b.Theater.Number
		}
	case domain.SortByMovie:
		names := collate.New(language.English)
		return func(a, b *domain.Showtime) int {
			return names.CompareString(a.Movie.Name, b.Movie.Name)
		}
	case domain.SortByDate:
		return func(a, b *domain.Showtime) int {
			return a.StartsAt.Compare(b.StartsAt)
		}
	case domain.SortByTime:
		// Минуты от полуночи; совпадает с порядком числа HHMM при дополнении нулями
		return func(a, b *domain.Showtime) int {
			return a.MinutesOfDay(loc) - b.MinutesOfDay(loc)
		}
	case domain.SortByBooked:
		return func(a, b *domain.Showtime) int {
			return a.SeatsBooked - b.SeatsBooked
		}
	case domain.SortByRelease:
		return func(a, b *domain.Showtime) int {
			return boolToInt(a.IsReleased) - boolToInt(b.IsReleased)
		}
	default:
		return func(a, b *domain.Showtime) int { return 0 }
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
