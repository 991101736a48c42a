package toggle_sort

import (
	"fmt"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// ToggleRequest HTTP request model
type ToggleRequest struct {
	Current SortStateDTO `json:"current"`
	Key     string       `json:"key" validate:"required"`
}

// SortStateDTO состояние сортировки
type SortStateDTO struct {
	Key       string `json:"key"`
	Direction int    `json:"direction" validate:"min=-1,max=1"`
}

// ToggleResponse новое состояние и направление по каждой колонке
type ToggleResponse struct {
	Key       string         `json:"key"`
	Direction int            `json:"direction"`
	Columns   map[string]int `json:"columns"`
}

// ToDomain конвертирует HTTP запрос в текущее состояние и ключ
func (r *ToggleRequest) ToDomain() (domain.SortState, domain.SortKey, error) {
	key, err := domain.ParseSortKey(r.Key)
	if err != nil {
		return domain.SortState{}, "", err
	}

	direction, err := domain.ParseSortDirection(r.Current.Direction)
	if err != nil {
		return domain.SortState{}, "", err
	}

	current := domain.SortState{Direction: direction}
	if r.Current.Key != "" {
		currentKey, err := domain.ParseSortKey(r.Current.Key)
		if err != nil {
			return domain.SortState{}, "", fmt.Errorf("current: %w", err)
		}
		current.Key = currentKey
	}

	return current, key, nil
}

// FromDomain конвертирует состояние сортировки в HTTP response
func FromDomain(state domain.SortState) *ToggleResponse {
	columns := make(map[string]int, len(domain.SortKeys))
	for _, k := range domain.SortKeys {
		columns[string(k)] = int(state.DirectionOf(k))
	}

	return &ToggleResponse{
		Key:       string(state.Key),
		Direction: int(state.Direction),
		Columns:   columns,
	}
}
