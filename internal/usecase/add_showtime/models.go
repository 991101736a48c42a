package add_showtime

import (
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

// Request модель запроса на добавление сеанса
type Request struct {
	Session    *domain.Session
	TheaterID  string
	MovieID    string
	Date       time.Time        // Рабочая дата (время суток игнорируется)
	StartTime  types.TimeString // Время начала, "HH:MM"
	RepeatDays int              // Количество дней подряд, 1..31
	IsReleased bool

	// Подстановка следующего сеанса
	AutoAdvance bool
	AdvanceDate bool
	GapHours    int
	GapMinutes  int
	Rounding    domain.RoundingMode
}

// Response модель ответа
type Response struct {
	StartsAt   time.Time
	RepeatDays int
	Next       *NextPrefill // nil, если AutoAdvance выключен
}

// NextPrefill значения формы для следующего сеанса
type NextPrefill struct {
	Time           types.TimeString
	Date           time.Time
	DateRolledOver bool
}
