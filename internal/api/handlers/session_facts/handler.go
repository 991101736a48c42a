package session_facts

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	"github.com/m04kA/SMC-ShowtimeService/internal/service/facts"
)

const (
	msgMissingSession     = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректный индекс кинотеатра или дата"
)

type Handler struct {
	service  FactsService
	location *time.Location
	logger   Logger
}

func NewHandler(service FactsService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Get GET /api/v1/session/facts
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("GET /session/facts - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.Get(r.Context(), s.Username)
	if err != nil {
		h.logger.Error("GET /session/facts - Failed to get facts: username=%s, error=%v", s.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result, h.location))
}

// Update PUT /api/v1/session/facts
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("PUT /session/facts - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req UpdateFactsRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /session/facts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	lastDate, err := req.ParseLastDate(h.location)
	if err != nil {
		h.logger.Warn("PUT /session/facts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	if err := h.service.Update(r.Context(), s.Username, req.LastCinemaIndex, lastDate); err != nil {
		switch {
		case errors.Is(err, facts.ErrInvalidInput):
			h.logger.Warn("PUT /session/facts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PUT /session/facts - Failed to update facts: username=%s, error=%v", s.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.Get(r.Context(), s.Username)
	if err != nil {
		h.logger.Error("PUT /session/facts - Failed to reload facts: username=%s, error=%v", s.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /session/facts - Facts updated: username=%s", s.Username)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result, h.location))
}
