package bulk_update_showtimes

import (
	"fmt"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// Action массовое действие над выбранными сеансами
type Action string

const (
	ActionRelease   Action = "release"
	ActionUnrelease Action = "unrelease"
	ActionDelete    Action = "delete"
)

// ParseAction валидирует название действия
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionRelease, ActionUnrelease, ActionDelete:
		return a, nil
	default:
		return "", fmt.Errorf("unknown bulk action %q", s)
	}
}

// Request модель запроса
type Request struct {
	Session     *domain.Session
	Action      Action
	ShowtimeIDs []string
}

// Response итог пакета: отдельные ошибки не прерывают обработку остальных
type Response struct {
	Action    Action
	Requested int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Failure ошибка по отдельному сеансу
type Failure struct {
	ShowtimeID string
	Reason     string
}
