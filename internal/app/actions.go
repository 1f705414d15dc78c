package app

import (
	"context"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

var (
	_ domain.Action = (*clearDraftAction)(nil)
	_ domain.Action = (*deliverAction)(nil)
)

// clearDraftAction removes the draft and puts the snapshot back on rollback.
type clearDraftAction struct {
	drafts   *DraftRepository
	store    ports.KeyValueStore
	snapshot draft.Draft
}

func (a *clearDraftAction) Execute(ctx context.Context) error {
	return a.drafts.Clear(ctx, a.store)
}

func (a *clearDraftAction) Rollback(ctx context.Context) error {
	return a.drafts.Save(ctx, a.store, a.snapshot)
}

func (a *clearDraftAction) Description() string { return "clear registration draft" }

// deliverAction hands the application to the gateway. Delivery cannot be
// recalled, so it must be the last staged action.
type deliverAction struct {
	gateway ports.SubmissionGateway
	app     *application.Application
}

func (a *deliverAction) Execute(ctx context.Context) error {
	return a.gateway.Deliver(ctx, a.app)
}

func (a *deliverAction) Rollback(context.Context) error { return nil }

func (a *deliverAction) Description() string { return "deliver application " + a.app.ID }
