// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/gtti-registration/internal/app/context"
	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/summary"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/telemetry"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/textclean"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// Compile-time check that RegistrationService implements ports.RegistrationService.
var _ ports.RegistrationService = (*RegistrationService)(nil)

const (
	defaultAgreementMessage = "Please agree to the declaration before submitting."
	defaultMaxValueLength   = 200
)

// Navigation results recorded on the wizard.navigation.total metric.
const (
	navMoved    = "moved"
	navBlocked  = "blocked"
	navBoundary = "boundary"
)

// Option configures a RegistrationService.
type Option func(*RegistrationService)

// WithMetrics records wizard metrics. Without it no metrics are recorded.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *RegistrationService) { s.metrics = m }
}

// WithClock replaces time.Now for submission timestamps and identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *RegistrationService) { s.now = now }
}

// WithRandom replaces the source of application serial numbers. intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *RegistrationService) { s.intn = intn }
}

// WithMaxValueLength caps stored field values at n runes.
func WithMaxValueLength(n int) Option {
	return func(s *RegistrationService) {
		if n > 0 {
			s.maxValueLength = n
		}
	}
}

// RegistrationService implements ports.RegistrationService on top of the
// wizard definition. The draft lives in the applicant's store; the service
// only loads, merges and writes it back on each call.
type RegistrationService struct {
	def            *wizard.Definition
	drafts         *DraftRepository
	gateway        ports.SubmissionGateway
	metrics        *telemetry.Metrics
	logger         *slog.Logger
	now            func() time.Time
	intn           func(n int) int
	maxValueLength int
}

// NewRegistrationService creates a RegistrationService. The gateway
// receives confirmed applications. A nil logger discards output.
func NewRegistrationService(def *wizard.Definition, gateway ports.SubmissionGateway, logger *slog.Logger, opts ...Option) *RegistrationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &RegistrationService{
		def:            def,
		drafts:         NewDraftRepository(logger),
		gateway:        gateway,
		logger:         logger,
		now:            time.Now,
		intn:           rand.IntN,
		maxValueLength: defaultMaxValueLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Page renders a wizard page hydrated from the stored draft.
func (s *RegistrationService) Page(ctx context.Context, store ports.KeyValueStore, page string) (*ports.PageView, error) {
	if !s.def.Known(page) {
		return nil, fmt.Errorf("page %q: %w", wizard.PageName(page), domain.ErrNotFound)
	}
	step := s.def.StepFor(page)

	d, err := s.drafts.Load(ctx, store)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load draft",
			slog.String("operation", "Page"),
			slog.String("page", step.Page),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.view(step, d), nil
}

// Save merges the page's submitted fields into the draft.
func (s *RegistrationService) Save(ctx context.Context, store ports.KeyValueStore, page string, input map[string]string) (map[string]string, error) {
	step := s.def.StepFor(page)

	values, _, err := s.save(ctx, store, step, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save draft",
			slog.String("operation", "Save"),
			slog.String("page", step.Page),
			slog.Any("error", err),
		)
		return nil, err
	}
	return values, nil
}

// Next saves the input, validates the step and moves forward.
func (s *RegistrationService) Next(ctx context.Context, store ports.KeyValueStore, page string, input map[string]string) (*ports.Navigation, error) {
	step := s.def.StepFor(page)

	_, d, err := s.save(ctx, store, step, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save draft",
			slog.String("operation", "Next"),
			slog.String("page", step.Page),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.def.Validate(step, d); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.recordValidation(ctx, step, verr)
		}
		s.recordNavigation(ctx, step, "next", navBlocked)
		s.logger.InfoContext(ctx, "navigation blocked by validation",
			slog.String("page", step.Page),
			slog.Any("fields", fieldNames(verr)),
		)
		return &ports.Navigation{From: step, To: step}, err
	}

	return s.move(ctx, step, "next", s.def.Next), nil
}

// Previous saves the input and moves back without validating.
func (s *RegistrationService) Previous(ctx context.Context, store ports.KeyValueStore, page string, input map[string]string) (*ports.Navigation, error) {
	step := s.def.StepFor(page)

	if _, _, err := s.save(ctx, store, step, input); err != nil {
		s.logger.ErrorContext(ctx, "failed to save draft",
			slog.String("operation", "Previous"),
			slog.String("page", step.Page),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.move(ctx, step, "previous", s.def.Previous), nil
}

// Draft returns the stored draft.
func (s *RegistrationService) Draft(ctx context.Context, store ports.KeyValueStore) (draft.Draft, error) {
	return s.drafts.Load(ctx, store)
}

// Summary groups the stored draft for the review page.
func (s *RegistrationService) Summary(ctx context.Context, store ports.KeyValueStore) ([]summary.Group, error) {
	d, err := s.drafts.Load(ctx, store)
	if err != nil {
		return nil, err
	}
	return summary.Build(s.def, d), nil
}

// Submit confirms the registration. The draft is cleared and the
// application delivered as one unit: if delivery fails the draft is put
// back so the applicant can retry.
func (s *RegistrationService) Submit(ctx context.Context, store ports.KeyValueStore, page string, input map[string]string) (*application.Application, error) {
	start := s.now()

	step := s.def.StepFor(page)
	if !s.def.Known(page) || !s.def.IsFinal(step.Number) {
		return nil, fmt.Errorf("submission from page %q: %w", wizard.PageName(page), domain.ErrNotFound)
	}

	sub := s.def.Submission()
	if strings.TrimSpace(input[sub.AgreementField]) == "" {
		msg := sub.AgreementMessage
		if msg == "" {
			msg = defaultAgreementMessage
		}
		s.recordSubmission(ctx, "declined", start)
		return nil, &domain.ValidationError{Fields: map[string]string{sub.AgreementField: msg}}
	}

	d, err := s.drafts.Load(ctx, store)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load draft",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		return nil, err
	}

	app := &application.Application{
		ID:          application.NewID(sub.IDPrefix, start, s.intn),
		Fields:      d.Clone(),
		SubmittedAt: start,
	}

	rc := appctx.New(ctx)
	if err := errors.Join(
		rc.AddAction(&clearDraftAction{drafts: s.drafts, store: store, snapshot: d}),
		rc.AddAction(&deliverAction{gateway: s.gateway, app: app}),
	); err != nil {
		return nil, fmt.Errorf("staging submission: %w", err)
	}

	if err := rc.Commit(ctx); err != nil {
		s.recordSubmission(ctx, "failed", start)
		s.logger.ErrorContext(ctx, "failed to submit application",
			slog.String("operation", "Submit"),
			slog.String("application_id", app.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.recordSubmission(ctx, "submitted", start)
	s.logger.InfoContext(ctx, "application submitted",
		slog.String("application_id", app.ID),
		slog.Int("fields", len(app.Fields)),
	)
	return app, nil
}

// Reset removes the stored draft.
func (s *RegistrationService) Reset(ctx context.Context, store ports.KeyValueStore) error {
	if err := s.drafts.Clear(ctx, store); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear draft",
			slog.String("operation", "Reset"),
			slog.Any("error", err),
		)
		return err
	}
	s.logger.InfoContext(ctx, "draft cleared")
	return nil
}

// Mask applies a field's input mask to value. Fields without a mask get
// the value back as it would be stored.
func (s *RegistrationService) Mask(field, value string) (string, error) {
	f, ok := s.def.Field(field)
	if !ok {
		return "", fmt.Errorf("field %q: %w", field, domain.ErrNotFound)
	}
	if f.Mask == "" {
		return textclean.Plain(value, s.maxValueLength), nil
	}
	return f.Mask.Apply(value), nil
}

// save merges the step's fields from input into the stored draft and
// writes it back when anything changed. It returns the accepted values and
// the merged draft.
func (s *RegistrationService) save(ctx context.Context, store ports.KeyValueStore, step wizard.Step, input map[string]string) (map[string]string, draft.Draft, error) {
	d, err := s.drafts.Load(ctx, store)
	if err != nil {
		return nil, nil, err
	}

	values := step.Collect(textclean.Values(input, s.maxValueLength))
	changed := d.Merge(values)
	if len(changed) == 0 {
		return values, d, nil
	}

	if err := s.drafts.Save(ctx, store, d); err != nil {
		return nil, nil, err
	}

	s.logger.DebugContext(ctx, "draft saved",
		slog.String("page", step.Page),
		slog.Any("changed", changed),
	)
	return values, d, nil
}

func (s *RegistrationService) move(ctx context.Context, from wizard.Step, direction string, target func(int) (wizard.Step, bool)) *ports.Navigation {
	to, ok := target(from.Number)
	if !ok {
		s.recordNavigation(ctx, from, direction, navBoundary)
		return &ports.Navigation{From: from, To: from}
	}
	s.recordNavigation(ctx, from, direction, navMoved)
	return &ports.Navigation{From: from, To: to, Moved: true}
}

func (s *RegistrationService) view(step wizard.Step, d draft.Draft) *ports.PageView {
	v := &ports.PageView{
		Step:     step,
		Fields:   wizard.Hydrate(step, d),
		Progress: s.def.Progress(step.Number),
		IsFinal:  s.def.IsFinal(step.Number),
	}
	if prev, ok := s.def.Previous(step.Number); ok {
		v.Previous = &prev
	}
	if next, ok := s.def.Next(step.Number); ok {
		v.Next = &next
	}
	if v.IsFinal {
		v.Summary = summary.Build(s.def, d)
		v.AgreementField = s.def.Submission().AgreementField
	}
	return v
}

func (s *RegistrationService) recordNavigation(ctx context.Context, step wizard.Step, direction, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.WizardNavigationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrStep.Int(step.Number),
		telemetry.AttrDirection.String(direction),
		telemetry.AttrResult.String(result),
	))
}

func (s *RegistrationService) recordValidation(ctx context.Context, step wizard.Step, verr *domain.ValidationError) {
	if s.metrics == nil {
		return
	}
	for name := range verr.Fields {
		s.metrics.WizardValidationFailures.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrStep.Int(step.Number),
			telemetry.AttrField.String(name),
		))
	}
}

func (s *RegistrationService) recordSubmission(ctx context.Context, result string, start time.Time) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))
	s.metrics.SubmissionTotal.Add(ctx, 1, attrs)
	s.metrics.SubmissionDuration.Record(ctx, s.now().Sub(start).Seconds(), attrs)
}

func fieldNames(verr *domain.ValidationError) []string {
	if verr == nil {
		return nil
	}
	names := make([]string, 0, len(verr.Fields))
	for name := range verr.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
