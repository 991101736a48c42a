package logout

import (
	"net/http"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
)

const msgMissingSession = "требуется авторизация"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.Logout(r.Context(), s); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: username=%s, error=%v", s.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Logged out: username=%s", s.Username)
	w.WriteHeader(http.StatusNoContent)
}
