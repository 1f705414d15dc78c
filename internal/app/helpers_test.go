package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/gtti-registration/internal/app"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/formdef"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// mapStore is an in-memory ports.KeyValueStore.
type mapStore struct {
	items map[string]string
}

var _ ports.KeyValueStore = (*mapStore)(nil)

func newMapStore() *mapStore {
	return &mapStore{items: make(map[string]string)}
}

func (s *mapStore) GetItem(_ context.Context, key string) (string, bool, error) {
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *mapStore) SetItem(_ context.Context, key, value string) error {
	s.items[key] = value
	return nil
}

func (s *mapStore) RemoveItem(_ context.Context, key string) error {
	delete(s.items, key)
	return nil
}

func registration(t *testing.T) *wizard.Definition {
	t.Helper()
	def, err := formdef.Registration()
	if err != nil {
		t.Fatalf("formdef.Registration() error: %v", err)
	}
	return def
}

func fixedClock() time.Time {
	return time.Date(2025, time.August, 14, 9, 30, 0, 0, time.UTC)
}

func newService(t *testing.T, gateway ports.SubmissionGateway, opts ...app.Option) *app.RegistrationService {
	t.Helper()
	opts = append([]app.Option{
		app.WithClock(fixedClock),
		app.WithRandom(func(int) int { return 234 }),
	}, opts...)
	return app.NewRegistrationService(registration(t), gateway, discardLogger(), opts...)
}

func completePersonal() map[string]string {
	return map[string]string{
		"studentName": "Ayesha Khan",
		"cnic":        "3520212345671",
		"dob":         "2007-05-21",
		"gender":      "Female",
		"phone":       "03001234567",
		"address":     "House 12, Street 4, Lahore",
	}
}

func fieldValue(t *testing.T, v *ports.PageView, name string) wizard.FieldView {
	t.Helper()
	for _, f := range v.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("page %s has no field %s", v.Step.Page, name)
	return wizard.FieldView{}
}
