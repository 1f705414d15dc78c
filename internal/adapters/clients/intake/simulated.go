package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// Compile-time interface check.
var _ ports.SubmissionGateway = (*Simulated)(nil)

// Simulated stands in for an intake API: it waits Delay and reports
// success. Cancelling the context ends the wait with the context's error.
type Simulated struct {
	Delay  time.Duration
	logger *slog.Logger
}

// NewSimulated creates a Simulated gateway. A nil logger discards output.
func NewSimulated(delay time.Duration, logger *slog.Logger) *Simulated {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Simulated{Delay: delay, logger: logger}
}

// Deliver waits the configured delay.
func (s *Simulated) Deliver(ctx context.Context, a *application.Application) error {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("simulated delivery of %s: %w", a.ID, ctx.Err())
		case <-t.C:
		}
	}

	s.logger.InfoContext(ctx, "simulated application delivery",
		slog.String("application_id", a.ID),
		slog.Duration("delay", s.Delay),
	)
	return nil
}
