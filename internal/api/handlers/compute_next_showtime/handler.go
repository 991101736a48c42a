package compute_next_showtime

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	computeNext "github.com/m04kA/SMC-ShowtimeService/internal/usecase/compute_next_showtime"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректная дата, время, перерыв или округление"
	msgSelectMovie        = "сначала выберите фильм"
	msgBackendFailed      = "сервис кинотеатров недоступен"
)

type Handler struct {
	useCase  ComputeNextShowtimeUseCase
	defaults Defaults
	location *time.Location
	logger   Logger
}

func NewHandler(useCase ComputeNextShowtimeUseCase, defaults Defaults, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		defaults: defaults,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/showtimes/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req NextShowtimeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /showtimes/next - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(session, h.defaults, h.location)
	if err != nil {
		h.logger.Warn("POST /showtimes/next - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, computeNext.ErrMovieNotSelected):
			h.logger.Warn("POST /showtimes/next - Movie not selected")
			handlers.RespondBadRequest(w, msgSelectMovie)

		case errors.Is(err, computeNext.ErrMovieNotFound):
			h.logger.Warn("POST /showtimes/next - Movie not found: movie_id=%s", req.MovieID)
			handlers.RespondNotFound(w, msgSelectMovie)

		case errors.Is(err, computeNext.ErrInvalidInput):
			h.logger.Warn("POST /showtimes/next - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, computeNext.ErrInternal):
			h.logger.Error("POST /showtimes/next - Backend failure: movie_id=%s, error=%v", req.MovieID, err)
			handlers.RespondBadGateway(w, msgBackendFailed)

		default:
			h.logger.Error("POST /showtimes/next - Failed to compute next showtime: movie_id=%s, error=%v", req.MovieID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /showtimes/next - Next showtime computed: movie_id=%s, time=%s, date=%s",
		result.MovieID, response.Time, response.Date)
	handlers.RespondJSON(w, http.StatusOK, response)
}
