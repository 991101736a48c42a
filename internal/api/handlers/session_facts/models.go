package session_facts

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// FactsResponse HTTP response model
type FactsResponse struct {
	LastCinemaIndex *int    `json:"lastCinemaIndex"`
	LastDate        *string `json:"lastDate"`
}

// UpdateFactsRequest HTTP request model. Отсутствующее поле не меняет сохранённое значение.
type UpdateFactsRequest struct {
	LastCinemaIndex *int    `json:"lastCinemaIndex" validate:"omitempty,min=0"`
	LastDate        *string `json:"lastDate"`
}

// ParseLastDate разбирает дату формата YYYY-MM-DD
func (r *UpdateFactsRequest) ParseLastDate(loc *time.Location) (*time.Time, error) {
	if r.LastDate == nil {
		return nil, nil
	}
	date, err := time.ParseInLocation(domain.DateFormat, *r.LastDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid lastDate %q: %w", *r.LastDate, err)
	}
	return &date, nil
}

// FromDomain конвертирует факты сессии в HTTP response
// Дата форматируется в поясе поиска, а не в поясе, в котором её вернула БД
func FromDomain(facts *domain.SessionFacts, loc *time.Location) *FactsResponse {
	resp := &FactsResponse{LastCinemaIndex: facts.LastCinemaIndex}
	if facts.LastDate != nil {
		date := facts.LastDate.In(loc).Format(domain.DateFormat)
		resp.LastDate = &date
	}
	return resp
}
