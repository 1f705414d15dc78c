package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/views"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/summary"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/formdef"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
	"github.com/jsamuelsen11/gtti-registration/mocks"
)

// fixedStores hands every request the same store.
type fixedStores struct {
	store ports.KeyValueStore
}

func (f fixedStores) Open(http.ResponseWriter, *http.Request) ports.KeyValueStore { return f.store }

func newWizardHandler(t *testing.T) (*handlers.WizardHandler, *mocks.MockRegistrationService, ports.KeyValueStore) {
	t.Helper()
	svc := mocks.NewMockRegistrationService(t)
	store := mocks.NewMockKeyValueStore(t)
	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error: %v", err)
	}
	return handlers.NewWizardHandler(svc, fixedStores{store: store}, renderer), svc, store
}

func newDraftHandler(t *testing.T) (*handlers.DraftHandler, *mocks.MockRegistrationService, ports.KeyValueStore) {
	t.Helper()
	svc := mocks.NewMockRegistrationService(t)
	store := mocks.NewMockKeyValueStore(t)
	return handlers.NewDraftHandler(svc, fixedStores{store: store}), svc, store
}

func definition(t *testing.T) *wizard.Definition {
	t.Helper()
	def, err := formdef.Registration()
	if err != nil {
		t.Fatalf("formdef.Registration() error: %v", err)
	}
	return def
}

// pageView builds the view the service would return for page and d.
func pageView(t *testing.T, page string, d draft.Draft) *ports.PageView {
	t.Helper()
	def := definition(t)
	step := def.StepFor(page)
	v := &ports.PageView{
		Step:     step,
		Fields:   wizard.Hydrate(step, d),
		Progress: def.Progress(step.Number),
		IsFinal:  def.IsFinal(step.Number),
	}
	if prev, ok := def.Previous(step.Number); ok {
		v.Previous = &prev
	}
	if next, ok := def.Next(step.Number); ok {
		v.Next = &next
	}
	if v.IsFinal {
		v.Summary = summary.Build(def, d)
		v.AgreementField = def.Submission().AgreementField
	}
	return v
}

func step(t *testing.T, page string) wizard.Step {
	t.Helper()
	return definition(t).StepFor(page)
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// formRequest builds a urlencoded POST for page.
func formRequest(page, action string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/"+page+"/"+action, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return withChiParams(req, map[string]string{"page": page})
}

// multipartRequest builds a multipart POST for page with the given text
// fields and one file part per entry of files (field name to file name).
func multipartRequest(t *testing.T, page, action string, fields, files map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		_, _ = fw.Write([]byte("\x89PNG fake image bytes"))
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("multipart close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/"+page+"/"+action, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withChiParams(req, map[string]string{"page": page})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireBodyContains(t *testing.T, rec *httptest.ResponseRecorder, want ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("body does not contain %q", w)
		}
	}
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	requireStatus(t, rec, http.StatusSeeOther)
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}
