package bulk_update_showtimes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	bulkUpdate "github.com/m04kA/SMC-ShowtimeService/internal/usecase/bulk_update_showtimes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается действие и список сеансов"
	msgInvalidInput       = "не выбраны сеансы или неизвестное действие"
	msgMissingSession     = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase BulkUpdateUseCase
	logger  Logger
}

func NewHandler(useCase BulkUpdateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/showtimes/bulk
// Ошибки по отдельным сеансам не прерывают пакет и возвращаются в failures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /showtimes/bulk - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req BulkRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /showtimes/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		switch {
		case errors.Is(err, bulkUpdate.ErrAccessDenied):
			h.logger.Warn("POST /showtimes/bulk - Access denied: username=%s", session.Username)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bulkUpdate.ErrInvalidInput):
			h.logger.Warn("POST /showtimes/bulk - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /showtimes/bulk - Failed to run bulk action: action=%s, error=%v", req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /showtimes/bulk - Bulk action completed: action=%s, requested=%d, succeeded=%d, failed=%d",
		result.Action, result.Requested, result.Succeeded, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
