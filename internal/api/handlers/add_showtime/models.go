package add_showtime

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	addShowtime "github.com/m04kA/SMC-ShowtimeService/internal/usecase/add_showtime"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

// Defaults значения формы по умолчанию (из конфигурации)
type Defaults struct {
	AutoAdvance bool
	AdvanceDate bool
	GapHours    int
	GapMinutes  int
	Rounding    domain.RoundingMode
}

// AddShowtimeRequest HTTP request model
type AddShowtimeRequest struct {
	TheaterID   string  `json:"theaterId" validate:"required"`
	MovieID     string  `json:"movieId"`
	Date        string  `json:"date" validate:"required"`       // "2024-03-05" или "05 Mar 2024"
	Time        string  `json:"time" validate:"required"`       // "18:30"
	Repeat      int     `json:"repeat" validate:"min=0,max=31"` // 1..31, 0 означает 1
	IsReleased  bool    `json:"isReleased"`
	AutoAdvance *bool   `json:"autoAdvance,omitempty"`
	AdvanceDate *bool   `json:"advanceDate,omitempty"`
	Gap         *string `json:"gap,omitempty"`      // "00:10"
	Rounding    *int    `json:"rounding,omitempty"` // 0, 5, 10
}

// AddShowtimeResponse HTTP response model
type AddShowtimeResponse struct {
	StartsAt string        `json:"startsAt"`
	Repeat   int           `json:"repeat"`
	Next     *NextResponse `json:"next,omitempty"`
}

// NextResponse подстановка формы для следующего сеанса
type NextResponse struct {
	Time           string `json:"time"`
	Date           string `json:"date"`
	DateRolledOver bool   `json:"dateRolledOver"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddShowtimeRequest) ToUseCaseRequest(session *domain.Session, defaults Defaults, loc *time.Location) (*addShowtime.Request, error) {
	date, err := domain.ParseDayLabel(r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	repeat := r.Repeat
	if repeat == 0 {
		repeat = domain.MinRepeatDays
	}

	req := &addShowtime.Request{
		Session:     session,
		TheaterID:   r.TheaterID,
		MovieID:     r.MovieID,
		Date:        date,
		StartTime:   startTime,
		RepeatDays:  repeat,
		IsReleased:  r.IsReleased,
		AutoAdvance: defaults.AutoAdvance,
		AdvanceDate: defaults.AdvanceDate,
		GapHours:    defaults.GapHours,
		GapMinutes:  defaults.GapMinutes,
		Rounding:    defaults.Rounding,
	}

	if r.AutoAdvance != nil {
		req.AutoAdvance = *r.AutoAdvance
	}
	if r.AdvanceDate != nil {
		req.AdvanceDate = *r.AdvanceDate
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

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addShowtime.Response) *AddShowtimeResponse {
	out := &AddShowtimeResponse{
		StartsAt: resp.StartsAt.Format(time.RFC3339),
		Repeat:   resp.RepeatDays,
	}
	if resp.Next != nil {
		out.Next = &NextResponse{
			Time:           resp.Next.Time.String(),
			Date:           resp.Next.Date.Format(domain.DateFormat),
			DateRolledOver: resp.Next.DateRolledOver,
		}
	}
	return out
}
