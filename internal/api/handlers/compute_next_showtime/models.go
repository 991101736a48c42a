package compute_next_showtime

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	computeNext "github.com/m04kA/SMC-ShowtimeService/internal/usecase/compute_next_showtime"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

// Defaults значения формы по умолчанию (из конфигурации)
type Defaults struct {
	GapHours    int
	GapMinutes  int
	Rounding    domain.RoundingMode
	AdvanceDate bool
}

// NextShowtimeRequest HTTP request model
type NextShowtimeRequest struct {
	MovieID     string  `json:"movieId"`
	Date        string  `json:"date" validate:"required"` // "2024-03-05" или "05 Mar 2024"
	Time        string  `json:"time" validate:"required"` // "18:30", начало только что запланированного сеанса
	Gap         *string `json:"gap,omitempty"`            // "00:10"
	Rounding    *int    `json:"rounding,omitempty"`       // 0, 5, 10
	AdvanceDate *bool   `json:"advanceDate,omitempty"`
}

// NextShowtimeResponse HTTP response model
type NextShowtimeResponse struct {
	MovieID        string `json:"movieId"`
	MovieLength    int    `json:"movieLength"`
	Time           string `json:"time"`
	Date           string `json:"date"`
	NextDate       string `json:"nextDate"`
	StartsAt       string `json:"startsAt"`
	DateRolledOver bool   `json:"dateRolledOver"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *NextShowtimeRequest) ToUseCaseRequest(session *domain.Session, defaults Defaults, loc *time.Location) (*computeNext.Request, error) {
	date, err := domain.ParseDayLabel(r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	req := &computeNext.Request{
		Session:     session,
		MovieID:     r.MovieID,
		Anchor:      startTime.OnDate(date),
		GapHours:    defaults.GapHours,
		GapMinutes:  defaults.GapMinutes,
		Rounding:    defaults.Rounding,
		AdvanceDate: defaults.AdvanceDate,
	}

	if r.Gap != nil {
		gap, err := types.NewTimeStringFromString(*r.Gap)
		if err != nil {
			return nil, fmt.Errorf("gap: %w", err)
		}
		req.GapHours = gap.Hour()
		req.GapMinutes = gap.Minute()
	}
	if r.Rounding != nil {
		mode, err := domain.ParseRoundingMode(*r.Rounding)
		if err != nil {
			return nil, err
		}
		req.Rounding = mode
	}
	if r.AdvanceDate != nil {
		req.AdvanceDate = *r.AdvanceDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeNext.Response) *NextShowtimeResponse {
	return &NextShowtimeResponse{
		MovieID:        resp.MovieID,
		MovieLength:    resp.MovieDurationMinutes,
		Time:           resp.Time.String(),
		Date:           resp.Date.Format(domain.DateFormat),
		NextDate:       resp.NextDate.Format(domain.DateFormat),
		StartsAt:       resp.StartsAt.Format(time.RFC3339),
		DateRolledOver: resp.DateRolledOver,
	}
}
