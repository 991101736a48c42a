package compute_next_showtime

import (
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

// Request модель запроса на расчет следующего сеанса
type Request struct {
	Session     *domain.Session     // Сессия (для записи факта последней даты), может быть nil
	MovieID     string              // ID фильма, длительность берется из каталога
	Anchor      time.Time           // Начало только что запланированного сеанса
	GapHours    int                 // Перерыв между сеансами, часы
	GapMinutes  int                 // Перерыв между сеансами, минуты
	Rounding    domain.RoundingMode // Округление вверх до 5 или 10 минут
	AdvanceDate bool                // Переносить рабочую дату вместе со временем
}

// Response модель ответа
type Response struct {
	MovieID              string
	MovieDurationMinutes int
	Time                 types.TimeString // Время следующего сеанса, "HH:MM"
	Date                 time.Time        // Рабочая дата формы (полночь)
	NextDate             time.Time        // Календарный день следующего сеанса (полночь)
	StartsAt             time.Time        // Date + Time
	DateRolledOver       bool             // Округление перенесло время через полночь (24:00 -> 00:00)
}

// AdvanceInput входные данные чистого расчета
type AdvanceInput struct {
	Anchor          time.Time
	DurationMinutes int
	GapHours        int
	GapMinutes      int
	Rounding        domain.RoundingMode
}

// AdvanceResult результат чистого расчета
type AdvanceResult struct {
	Time            types.TimeString
	Next            time.Time // Полный момент следующего сеанса
	DateRolledOver bool
}
