package compute_next_showtime

import (
	"fmt"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MovieID == "" {
		return ErrMovieNotSelected
	}

	if req.Anchor.IsZero() {
		return fmt.Errorf("%w: anchor showtime is required", ErrInvalidInput)
	}

	if req.GapHours < 0 || req.GapHours > domain.MaxGapHours {
		return fmt.Errorf("%w: gap hours must be between 0 and %d", ErrInvalidInput, domain.MaxGapHours)
	}

	if req.GapMinutes < 0 || req.GapMinutes > 59 {
		return fmt.Errorf("%w: gap minutes must be between 0 and 59", ErrInvalidInput)
	}

	if _, err := domain.ParseRoundingMode(int(req.Rounding)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
