package add_showtime

import (
	"fmt"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MovieID == "" {
		return ErrMovieNotSelected
	}

	if req.TheaterID == "" {
		return fmt.Errorf("%w: theater is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.RepeatDays < domain.MinRepeatDays || req.RepeatDays > domain.MaxRepeatDays {
		return fmt.Errorf("%w: repeat must be between %d and %d days", ErrInvalidInput, domain.MinRepeatDays, domain.MaxRepeatDays)
	}

	return nil
}
