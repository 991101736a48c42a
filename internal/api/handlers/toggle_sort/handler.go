package toggle_sort

import (
	"net/http"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSortKey     = "некорректный ключ сортировки"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/showtimes/sort/toggle
// Цикл: нет -> по возрастанию -> по убыванию -> нет; остальные ключи сбрасываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /showtimes/sort/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	current, key, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /showtimes/sort/toggle - Invalid sort: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSortKey)
		return
	}

	next := current.Toggle(key)

	h.logger.Info("POST /showtimes/sort/toggle - key=%s, direction=%d -> %d", key, current.DirectionOf(key), next.Direction)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(next))
}
