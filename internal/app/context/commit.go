package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/logging"
)

// Commit executes all staged actions in insertion order. If any action
// fails, previously completed actions are rolled back in reverse order.
// Rollback errors are logged but do not affect the returned error.
// Cancellation of ctx is checked before each action and handled like a
// failure of that action.
//
// Rollbacks run on a context detached from ctx's cancellation, so a
// client that disconnects mid-commit still gets its state restored.
//
// After Commit returns (whether success or failure), the RequestContext is
// marked as committed. Returns ErrAlreadyCommitted if called more than once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	actions := rc.actions
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range actions {
		if err := ctx.Err(); err != nil {
			rollback(context.WithoutCancel(ctx), actions[:i], logger)
			return fmt.Errorf("before %s: %w", action.Description(), err)
		}

		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(context.WithoutCancel(ctx), actions[:i], logger)
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

// rollback undoes done in reverse order. Failures are logged at ERROR level
// and do not stop the remaining rollbacks.
func rollback(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]

		logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)

		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
