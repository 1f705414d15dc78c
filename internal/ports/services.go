package ports

import (
	"context"
	"maps"
	"slices"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/summary"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
)

// RegistrationService drives the registration wizard for one applicant.
// Implemented by the application layer; called by inbound adapters.
// Every method receives the applicant's KeyValueStore for the current
// request; the service itself holds no per-applicant state.
type RegistrationService interface {
	// Page renders a wizard page hydrated from the stored draft.
	// Returns domain.ErrNotFound if page is not a wizard page.
	Page(ctx context.Context, store KeyValueStore, page string) (*PageView, error)

	// Save merges the page's submitted fields into the draft and returns
	// the values as stored (sanitized and masked). Fields that do not
	// belong to the page are ignored. Unknown pages act as step 1.
	Save(ctx context.Context, store KeyValueStore, page string, input map[string]string) (map[string]string, error)

	// Next saves the input, validates the page and moves forward.
	// Returns a *domain.ValidationError when the page is incomplete, in
	// which case the navigation does not move.
	Next(ctx context.Context, store KeyValueStore, page string, input map[string]string) (*Navigation, error)

	// Previous saves the input and moves back without validating.
	Previous(ctx context.Context, store KeyValueStore, page string, input map[string]string) (*Navigation, error)

	// Draft returns the stored draft. A missing or unreadable record is an
	// empty draft.
	Draft(ctx context.Context, store KeyValueStore) (draft.Draft, error)

	// Summary groups the stored draft for the review page.
	Summary(ctx context.Context, store KeyValueStore) ([]summary.Group, error)

	// Submit confirms the registration from the final page. input must
	// carry the agreement field. On success the draft is removed.
	// Returns a *domain.ValidationError when the declaration is not
	// agreed, domain.ErrNotFound when page is not the final page, and the
	// gateway's error (with the draft restored) when delivery fails.
	Submit(ctx context.Context, store KeyValueStore, page string, input map[string]string) (*application.Application, error)

	// Reset removes the stored draft without submitting.
	Reset(ctx context.Context, store KeyValueStore) error

	// Mask applies a field's input mask to value.
	// Returns domain.ErrNotFound if the field does not exist.
	Mask(field, value string) (string, error)
}

// Navigation is the outcome of a next or previous request.
type Navigation struct {
	// From is the step the request was made on.
	From wizard.Step
	// To is the step to show next. It equals From when the move was out of
	// range.
	To wizard.Step
	// Moved is false for out-of-range moves.
	Moved bool
}

// PageView is everything a wizard page needs to render.
type PageView struct {
	Step     wizard.Step
	Fields   []wizard.FieldView
	Progress []wizard.ProgressItem

	Previous *wizard.Step
	Next     *wizard.Step
	IsFinal  bool

	// Summary and AgreementField are set on the final page only.
	Summary        []summary.Group
	AgreementField string

	// Alert is a blocking message for failures that have no inline marker,
	// such as an unchosen radio group or the declaration checkbox.
	Alert string
}

// ApplyErrors marks the failing fields of the view invalid. Failures on
// radio groups or on fields not shown as inputs are raised as the alert.
func (v *PageView) ApplyErrors(verr *domain.ValidationError) {
	if verr == nil {
		return
	}
	wizard.MarkInvalid(v.Fields, verr.Fields)

	shown := make(map[string]bool, len(v.Fields))
	for _, f := range v.Fields {
		shown[f.Name] = true
		if msg, ok := verr.Fields[f.Name]; ok && f.Kind == wizard.KindRadio && v.Alert == "" {
			v.Alert = msg
		}
	}
	if v.Alert != "" {
		return
	}
	for _, name := range slices.Sorted(maps.Keys(verr.Fields)) {
		if !shown[name] {
			v.Alert = verr.Fields[name]
			return
		}
	}
}
