package search_showtimes

import (
	"fmt"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Sort.Key != "" {
		if _, err := domain.ParseSortKey(string(req.Sort.Key)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if _, err := domain.ParseSortDirection(int(req.Sort.Direction)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
