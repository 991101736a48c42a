package search_showtimes

import (
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// BuildFacets строит варианты фильтров по полному (неотфильтрованному) снапшоту
//
// Порядок:
// - кинотеатры и фильмы: по первому появлению, уникальность по ID
// - залы: по возрастанию номера
// - даты: по первому появлению
// - время: лексикографически
func BuildFacets(showtimes []domain.Showtime, loc *time.Location) Facets {
	facets := Facets{
		Cinemas:  []FacetOption{},
		Theaters: []TheaterOption{},
		Movies:   []FacetOption{},
		Dates:    []FacetOption{},
		Times:    []FacetOption{},
	}

	seenCinemas := make(map[string]struct{})
	seenTheaters := make(map[int]struct{})
	seenMovies := make(map[string]struct{})
	seenDates := make(map[string]struct{})
	seenTimes := make(map[string]struct{})

	for _, st := range showtimes {
		cinema := st.Theater.Cinema
		if _, ok := seenCinemas[cinema.ID]; !ok {
			seenCinemas[cinema.ID] = struct{}{}
			facets.Cinemas = append(facets.Cinemas, FacetOption{Value: cinema.ID, Label: cinema.Name})
		}

		if _, ok := seenTheaters[st.Theater.Number]; !ok {
			seenTheaters[st.Theater.Number] = struct{}{}
			facets.Theaters = append(facets.Theaters, TheaterOption{
				Value: st.Theater.Number,
				Label: strconv.Itoa(st.Theater.Number),
			})
		}

		if _, ok := seenMovies[st.Movie.ID]; !ok {
			seenMovies[st.Movie.ID] = struct{}{}
			facets.Movies = append(facets.Movies, FacetOption{Value: st.Movie.ID, Label: st.Movie.Name})
		}

		date := st.DayLabel(loc)
		if _, ok := seenDates[date]; !ok {
			seenDates[date] = struct{}{}
			facets.Dates = append(facets.Dates, FacetOption{Value: date, Label: date})
		}

		tm := st.TimeLabel(loc)
		if _, ok := seenTimes[tm]; !ok {
			seenTimes[tm] = struct{}{}
			facets.Times = append(facets.Times, FacetOption{Value: tm, Label: tm})
		}
	}

	sort.Slice(facets.Theaters, func(i, j int) bool {
		return facets.Theaters[i].Value < facets.Theaters[j].Value
	})
	sort.Slice(facets.Times, func(i, j int) bool {
		return facets.Times[i].Value < facets.Times[j].Value
	})

	return facets
}
