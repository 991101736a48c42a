package compute_next_showtime

import (
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

// Advance вычисляет время следующего сеанса: anchor + длительность + перерыв,
// затем, если задано, округляет вверх до границы шага в пределах суток
//
// Примеры:
// - 14:00 + 90 + 0:10, без округления → 15:40
// - 23:50 + 100, до 5 минут → 01:30 следующего дня (переход дня от сложения, флаг не ставится)
// - сырой результат 23:58, до 5 минут → 24:00 → 00:00 следующего дня, DateRolledOver
//
// DateRolledOver выставляется только когда округление дало 24:00;
// переход через полночь при сложении отражается только в Next
func Advance(in AdvanceInput) AdvanceResult {
	totalShift := in.DurationMinutes + in.GapHours*60 + in.GapMinutes
	raw := in.Anchor.Add(time.Duration(totalShift) * time.Minute)

	day := domain.StartOfDay(raw)
	minutesOfDay := raw.Hour()*60 + raw.Minute()
	wrapped := false

	if step := in.Rounding.Step(); step > 0 {
		rounded := ceilDiv(minutesOfDay, step) * step
		hours, minutes := rounded/60, rounded%60
		if hours == 24 {
			hours = 0
			wrapped = true
			day = day.AddDate(0, 0, 1)
		}
		minutesOfDay = hours*60 + minutes
	}

	timeOfDay := types.NewTimeStringFromMinutes(minutesOfDay)
	next := timeOfDay.OnDate(day)

	return AdvanceResult{
		Time:           timeOfDay,
		Next:           next,
		DateRolledOver: wrapped,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
