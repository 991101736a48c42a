package bulk_update_showtimes

import (
	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	bulkUpdate "github.com/m04kA/SMC-ShowtimeService/internal/usecase/bulk_update_showtimes"
)

// BulkRequest HTTP request model
type BulkRequest struct {
	Action      string   `json:"action" validate:"required,oneof=release unrelease delete"`
	ShowtimeIDs []string `json:"showtimeIds" validate:"required,min=1,dive,required"`
}

// BulkResponse HTTP response model
type BulkResponse struct {
	Action    string            `json:"action"`
	Requested int               `json:"requested"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Failures  []FailureResponse `json:"failures"`
}

type FailureResponse struct {
	ShowtimeID string `json:"showtimeId"`
	Reason     string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkRequest) ToUseCaseRequest(session *domain.Session) *bulkUpdate.Request {
	return &bulkUpdate.Request{
		Session:     session,
		Action:      bulkUpdate.Action(r.Action),
		ShowtimeIDs: r.ShowtimeIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkUpdate.Response) *BulkResponse {
	out := &BulkResponse{
		Action:    string(resp.Action),
		Requested: resp.Requested,
		Succeeded: resp.Succeeded,
		Failed:    resp.Failed,
		Failures:  make([]FailureResponse, 0, len(resp.Failures)),
	}
	for _, f := range resp.Failures {
		out.Failures = append(out.Failures, FailureResponse{ShowtimeID: f.ShowtimeID, Reason: f.Reason})
	}
	return out
}
