package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

type Handler struct {
	checks map[string]Pinger
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		checks: make(map[string]Pinger),
		logger: logger,
	}
}

// WithCheck добавляет проверку зависимости
func (h *Handler) WithCheck(name string, p Pinger) *Handler {
	h.checks[name] = p
	return h
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: statusOK}
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := h.checks[name].PingContext(ctx)
		cancel()

		if err != nil {
			h.logger.Warn("GET /health - Check failed: name=%s, error=%v", name, err)
			resp.Checks[name] = err.Error()
			resp.Status = statusDegraded
			continue
		}
		resp.Checks[name] = statusOK
	}

	status := http.StatusOK
	if resp.Status != statusOK {
		status = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, status, resp)
}
