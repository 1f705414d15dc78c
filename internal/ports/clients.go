package ports

import (
	"context"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
)

// SubmissionGateway delivers a confirmed registration to whatever receives
// it. Implemented by the intake adapters; called by the application layer.
type SubmissionGateway interface {
	// Deliver hands the application over. It blocks until the receiver has
	// accepted it or ctx is done.
	// Returns domain.ErrUnavailable when the receiver cannot be reached.
	Deliver(ctx context.Context, app *application.Application) error
}
