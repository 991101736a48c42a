package health

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
