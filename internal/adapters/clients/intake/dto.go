package intake

import (
	"time"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
)

// applicationRequest is the body of POST /applications.
type applicationRequest struct {
	ID          string            `json:"id"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Fields      map[string]string `json:"fields"`
}

// receiptResponse is the intake API's acknowledgement.
type receiptResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

func toApplicationRequest(a *application.Application) applicationRequest {
	return applicationRequest{
		ID:          a.ID,
		SubmittedAt: a.SubmittedAt.UTC(),
		Fields:      a.Fields,
	}
}
