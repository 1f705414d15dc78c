// Package appctx provides request-scoped staging of actions that must all
// succeed or be undone together.
//
// A new RequestContext is created per request and must not be shared
// between concurrent requests:
//
//	rc := appctx.New(ctx)
//	rc.AddAction(clearDraft)
//	rc.AddAction(deliver)
//	err := rc.Commit(ctx)
//
// When deliver fails, clearDraft is rolled back and the applicant's draft
// is restored.
package appctx

import (
	"context"
	"errors"
	"sync"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// RequestContext embeds context.Context and queues actions for
// transactional execution via Commit.
type RequestContext struct {
	context.Context

	queueMu   sync.Mutex
	actions   []domain.Action
	committed bool
}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx}
}

// Len returns the number of staged actions.
func (rc *RequestContext) Len() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.actions)
}
