package search_showtimes

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	searchShowtimes "github.com/m04kA/SMC-ShowtimeService/internal/usecase/search_showtimes"
	"github.com/m04kA/SMC-ShowtimeService/pkg/ptr"
)

// SearchRequest HTTP request model
type SearchRequest struct {
	Criteria CriteriaRequest `json:"criteria"`
	Sort     SortRequest     `json:"sort"`
	Refresh  bool            `json:"refresh"`

	// Отмеченные сеансы вместе с фильтрами и сортировкой, при которых их отметили
	Selection *SelectionRequest `json:"selection"`
}

// SelectionRequest отметки для bulk-операций
type SelectionRequest struct {
	IDs      []string        `json:"ids" validate:"dive,required"`
	Criteria CriteriaRequest `json:"criteria"`
	Sort     SortRequest     `json:"sort"`
}

// CriteriaRequest фильтры поиска; пустые поля не ограничивают выборку
type CriteriaRequest struct {
	CinemaIDs      []string `json:"cinemaIds"`
	TheaterNumbers []int    `json:"theaterNumbers"`
	MovieIDs       []string `json:"movieIds"`
	Dates          []string `json:"dates"`    // "05 Mar 2024" или "2024-03-05"
	Times          []string `json:"times"`    // "18 : 30" или "18:30"
	DateFrom       string   `json:"dateFrom"` // включительно
	DateTo         string   `json:"dateTo"`   // включительно
	TimeFrom       string   `json:"timeFrom"`
	TimeTo         string   `json:"timeTo"`
	Date           string   `json:"date"`    // past, today, future
	Release        string   `json:"release"` // released, unreleased
}

// SortRequest активная сортировка
type SortRequest struct {
	Key       string `json:"key"`
	Direction int    `json:"direction" validate:"min=-1,max=1"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
	Facets    FacetsResponse     `json:"facets"`
	Warnings  []WarningResponse  `json:"warnings"`
	Total     int                `json:"total"`
	Count     int                `json:"count"`

	Selected         []string `json:"selected"`
	SelectionCleared bool     `json:"selectionCleared"`
}

// ShowtimeResponse сеанс в выдаче
type ShowtimeResponse struct {
	ID          string          `json:"id"`
	Movie       MovieResponse   `json:"movie"`
	Theater     TheaterResponse `json:"theater"`
	StartsAt    string          `json:"startsAt"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	SeatsBooked int             `json:"seatsBooked"`
	IsReleased  bool            `json:"isReleased"`
}

type MovieResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

type TheaterResponse struct {
	ID     string         `json:"id"`
	Number int            `json:"number"`
	Cinema CinemaResponse `json:"cinema"`
}

type CinemaResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FacetsResponse варианты для фильтров
type FacetsResponse struct {
	Cinemas  []OptionResponse        `json:"cinemas"`
	Theaters []TheaterOptionResponse `json:"theaters"`
	Movies   []OptionResponse        `json:"movies"`
	Dates    []OptionResponse        `json:"dates"`
	Times    []OptionResponse        `json:"times"`
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TheaterOptionResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type WarningResponse struct {
	ShowtimeID string `json:"showtimeId"`
	Reason     string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SearchRequest) ToUseCaseRequest(session *domain.Session, loc *time.Location) (*searchShowtimes.Request, error) {
	criteria, err := r.Criteria.toDomain(loc)
	if err != nil {
		return nil, err
	}

	req := &searchShowtimes.Request{
		Session:  session,
		Criteria: criteria,
		Sort:     r.Sort.toDomain(),
		Refresh:  r.Refresh,
	}

	if r.Selection != nil {
		selectionCriteria, err := r.Selection.Criteria.toDomain(loc)
		if err != nil {
			return nil, fmt.Errorf("selection: %w", err)
		}
		req.Selection = &searchShowtimes.Selection{
			IDs:      r.Selection.IDs,
			Criteria: selectionCriteria,
			Sort:     r.Selection.Sort.toDomain(),
		}
	}

	return req, nil
}

func (s SortRequest) toDomain() domain.SortState {
	return domain.SortState{
		Key:       domain.SortKey(s.Key),
		Direction: domain.SortDirection(s.Direction),
	}
}

// toDomain приводит даты и время к формату меток ("05 Mar 2024", "18 : 30")
func (c CriteriaRequest) toDomain(loc *time.Location) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		CinemaIDs:      c.CinemaIDs,
		TheaterNumbers: c.TheaterNumbers,
		MovieIDs:       c.MovieIDs,
	}

	for _, d := range c.Dates {
		day, err := domain.ParseDayLabel(d, loc)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.Dates = append(criteria.Dates, day.Format(domain.DayLabelFormat))
	}

	for _, t := range c.Times {
		label, err := domain.NormalizeTimeLabel(t)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.Times = append(criteria.Times, label)
	}

	// Парсим границы диапазона дат
	if c.DateFrom != "" {
		day, err := domain.ParseDayLabel(c.DateFrom, loc)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("dateFrom: %w", err)
		}
		criteria.DateFrom = &day
	}
	if c.DateTo != "" {
		day, err := domain.ParseDayLabel(c.DateTo, loc)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("dateTo: %w", err)
		}
		criteria.DateTo = &day
	}

	// Парсим границы диапазона времени
	if c.TimeFrom != "" {
		label, err := domain.NormalizeTimeLabel(c.TimeFrom)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("timeFrom: %w", err)
		}
		criteria.TimeFrom = ptr.Ptr(label)
	}
	if c.TimeTo != "" {
		label, err := domain.NormalizeTimeLabel(c.TimeTo)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("timeTo: %w", err)
		}
		criteria.TimeTo = ptr.Ptr(label)
	}

	bucket, err := domain.ParseDateBucket(c.Date)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	criteria.DateBucket = bucket

	release, err := domain.ParseReleaseBucket(c.Release)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	criteria.ReleaseBucket = release

	return criteria, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchShowtimes.Response, loc *time.Location) *SearchResponse {
	out := &SearchResponse{
		Showtimes: make([]ShowtimeResponse, 0, len(resp.Showtimes)),
		Warnings:  make([]WarningResponse, 0, len(resp.Warnings)),
		Total:     resp.Total,
		Count:     len(resp.Showtimes),

		Selected:         make([]string, 0, len(resp.Selected)),
		SelectionCleared: resp.SelectionCleared,
		Facets: FacetsResponse{
			Cinemas:  fromOptions(resp.Facets.Cinemas),
			Theaters: make([]TheaterOptionResponse, 0, len(resp.Facets.Theaters)),
			Movies:   fromOptions(resp.Facets.Movies),
			Dates:    fromOptions(resp.Facets.Dates),
			Times:    fromOptions(resp.Facets.Times),
		},
	}

	out.Selected = append(out.Selected, resp.Selected...)

	for i := range resp.Showtimes {
		out.Showtimes = append(out.Showtimes, fromShowtime(&resp.Showtimes[i], loc))
	}
	for _, o := range resp.Facets.Theaters {
		out.Facets.Theaters = append(out.Facets.Theaters, TheaterOptionResponse{Value: o.Value, Label: o.Label})
	}
	for _, w := range resp.Warnings {
		out.Warnings = append(out.Warnings, WarningResponse{ShowtimeID: w.ShowtimeID, Reason: w.Reason})
	}

	return out
}

// fromShowtime ожидает запись, прошедшую проверку целостности
func fromShowtime(s *domain.Showtime, loc *time.Location) ShowtimeResponse {
	return ShowtimeResponse{
		ID: s.ID,
		Movie: MovieResponse{
			ID:     s.Movie.ID,
			Name:   s.Movie.Name,
			Length: s.Movie.DurationMinutes,
		},
		Theater: TheaterResponse{
			ID:     s.Theater.ID,
			Number: s.Theater.Number,
			Cinema: CinemaResponse{
				ID:   s.Theater.Cinema.ID,
				Name: s.Theater.Cinema.Name,
			},
		},
		StartsAt:    s.LocalStart(loc).Format(time.RFC3339),
		Date:        s.DayLabel(loc),
		Time:        s.TimeLabel(loc),
		SeatsBooked: s.SeatsBooked,
		IsReleased:  s.IsReleased,
	}
}

func fromOptions(opts []searchShowtimes.FacetOption) []OptionResponse {
	out := make([]OptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionResponse{Value: o.Value, Label: o.Label})
	}
	return out
}
