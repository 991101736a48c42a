package add_showtime

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	addShowtime "github.com/m04kA/SMC-ShowtimeService/internal/usecase/add_showtime"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректная дата, время, перерыв или округление"
	msgInvalidInput       = "некорректные параметры сеанса"
	msgSelectMovie        = "сначала выберите фильм"
	msgMissingSession     = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
	msgBackendFailed      = "сервис кинотеатров недоступен"
)

type Handler struct {
	useCase  AddShowtimeUseCase
	defaults Defaults
	location *time.Location
	logger   Logger
}

func NewHandler(useCase AddShowtimeUseCase, defaults Defaults, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		defaults: defaults,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/showtimes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /showtimes - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req AddShowtimeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /showtimes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(session, h.defaults, h.location)
	if err != nil {
		h.logger.Warn("POST /showtimes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addShowtime.ErrAccessDenied):
			h.logger.Warn("POST /showtimes - Access denied: username=%s", session.Username)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, addShowtime.ErrMovieNotSelected):
			h.logger.Warn("POST /showtimes - Movie not selected: username=%s", session.Username)
			handlers.RespondBadRequest(w, msgSelectMovie)

		case errors.Is(err, addShowtime.ErrMovieNotFound):
			h.logger.Warn("POST /showtimes - Movie not found: movie_id=%s", req.MovieID)
			handlers.RespondNotFound(w, msgSelectMovie)

		case errors.Is(err, addShowtime.ErrInvalidInput):
			h.logger.Warn("POST /showtimes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, addShowtime.ErrInternal):
			h.logger.Error("POST /showtimes - Backend failure: movie_id=%s, theater_id=%s, error=%v",
				req.MovieID, req.TheaterID, err)
			handlers.RespondBadGateway(w, msgBackendFailed)

		default:
			h.logger.Error("POST /showtimes - Failed to add showtime: movie_id=%s, theater_id=%s, error=%v",
				req.MovieID, req.TheaterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /showtimes - Showtime added: movie_id=%s, theater_id=%s, starts_at=%s, repeat=%d",
		req.MovieID, req.TheaterID, response.StartsAt, response.Repeat)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
