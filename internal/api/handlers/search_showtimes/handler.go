package search_showtimes

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	searchShowtimes "github.com/m04kA/SMC-ShowtimeService/internal/usecase/search_showtimes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCriteria    = "некорректные параметры фильтра"
	msgInvalidSort        = "некорректные параметры сортировки"
	msgUnauthorized       = "токен отклонен сервисом кинотеатров"
	msgBackendFailed      = "сервис кинотеатров недоступен"
)

type Handler struct {
	useCase  SearchShowtimesUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase SearchShowtimesUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/showtimes/search
// Аутентификация необязательна: администратор видит и неопубликованные сеансы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /showtimes/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и времени)
	useCaseReq, err := req.ToUseCaseRequest(session, h.location)
	if err != nil {
		h.logger.Warn("POST /showtimes/search - Invalid criteria: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCriteria)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchShowtimes.ErrInvalidInput):
			h.logger.Warn("POST /showtimes/search - Invalid sort: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSort)

		case errors.Is(err, searchShowtimes.ErrUnauthorized):
			h.logger.Warn("POST /showtimes/search - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, searchShowtimes.ErrInternal):
			h.logger.Error("POST /showtimes/search - Backend failure: %v", err)
			handlers.RespondBadGateway(w, msgBackendFailed)

		default:
			h.logger.Error("POST /showtimes/search - Failed to search showtimes: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, h.location)

	h.logger.Info("POST /showtimes/search - Showtimes found: count=%d, total=%d, warnings=%d",
		response.Count, response.Total, len(response.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
