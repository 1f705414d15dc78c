package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/clients/intake"
	adapthttp "github.com/jsamuelsen11/gtti-registration/internal/adapters/http"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/views"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/storage"
	"github.com/jsamuelsen11/gtti-registration/internal/app"
	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/config"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/formdef"
	"github.com/jsamuelsen11/gtti-registration/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockRegistrationService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockRegistrationService(t)
	registry := mocks.NewMockHealthRegistry(t)
	stores := storage.NewMemoryStore(&config.DraftConfig{TTL: time.Hour, CleanupInterval: time.Minute})

	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error: %v", err)
	}

	router := adapthttp.NewRouter(
		handlers.NewWizardHandler(svc, stores, renderer),
		handlers.NewDraftHandler(svc, stores),
		handlers.NewHealthHandler(registry),
		middlewares...,
	)
	return router, svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/draft"},
		{http.MethodDelete, "/api/v1/draft"},
		{http.MethodGet, "/api/v1/summary"},
		{http.MethodPost, "/api/v1/mask"},
		{http.MethodGet, "/"},
		{http.MethodPost, "/reset"},
		{http.MethodGet, "/{page}"},
		{http.MethodPost, "/{page}/save"},
		{http.MethodPost, "/{page}/next"},
		{http.MethodPost, "/{page}/prev"},
		{http.MethodPost, "/{page}/submit"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, _, registry := newTestRouter(t, testMW)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_MaskRoute(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)
	svc.EXPECT().Mask("cnic", "3520212345671").Return("35202-1234567-1", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mask", strings.NewReader(`{"field":"cnic","value":"3520212345671"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/draft", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// --- End to end ---

// maxValueLength matches the draft.max_value_length default.
const maxValueLength = 200

// wizardClient drives the real stack through a browser-like client that
// keeps cookies and follows redirects.
type wizardClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newWizard(t *testing.T) *wizardClient {
	t.Helper()

	def, err := formdef.Registration()
	if err != nil {
		t.Fatalf("formdef.Registration() error: %v", err)
	}
	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error: %v", err)
	}
	stores := storage.NewCookieStore(&config.DraftConfig{
		Secret: "end-to-end-test-secret-0123456789abcdef",
		TTL:    time.Hour,
	})
	svc := app.NewRegistrationService(def, intake.NewSimulated(0, nil), nil, app.WithMaxValueLength(maxValueLength))
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewWizardHandler(svc, stores, renderer),
		handlers.NewDraftHandler(svc, stores),
		handlers.NewHealthHandler(registry),
		middleware.Recovery(discardLogger()),
		middleware.RequestID(),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &wizardClient{t: t, base: srv.URL, client: &http.Client{Jar: jar, Timeout: 10 * time.Second}}
}

// response is a fully read HTTP response.
type response struct {
	status int
	path   string
	body   string
}

func (c *wizardClient) do(req *http.Request) response {
	c.t.Helper()
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("reading body: %v", err)
	}
	return response{status: resp.StatusCode, path: resp.Request.URL.Path, body: string(b)}
}

func (c *wizardClient) get(path string) response {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	if err != nil {
		c.t.Fatalf("NewRequest: %v", err)
	}
	return c.do(req)
}

func (c *wizardClient) post(path string, values url.Values) response {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodPost, c.base+path, strings.NewReader(values.Encode()))
	if err != nil {
		c.t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *wizardClient) upload(path string, files map[string]string) response {
	c.t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			c.t.Fatalf("CreateFormFile: %v", err)
		}
		_, _ = fw.Write([]byte("scan"))
	}
	if err := mw.Close(); err != nil {
		c.t.Fatalf("multipart close: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.base+path, body)
	if err != nil {
		c.t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req)
}

func (c *wizardClient) draft() map[string]string {
	c.t.Helper()
	resp := c.get("/api/v1/draft")
	var out struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal([]byte(resp.body), &out); err != nil {
		c.t.Fatalf("decoding draft: %v; body = %s", err, resp.body)
	}
	return out.Fields
}

func expectPage(t *testing.T, got response, status int, path string, contains ...string) {
	t.Helper()
	if got.status != status {
		t.Fatalf("status = %d, want %d; body = %s", got.status, status, got.body)
	}
	if path != "" && got.path != path {
		t.Errorf("path = %q, want %q", got.path, path)
	}
	for _, want := range contains {
		if !strings.Contains(got.body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}

func TestWizard_EndToEnd(t *testing.T) {
	t.Parallel()
	w := newWizard(t)

	expectPage(t, w.get("/"), http.StatusOK, "/",
		"<h2>Personal Info</h2>", `class="step-item active" data-step="1"`)

	// Save-on-input masks and persists.
	saved := w.post("/personal-info.html/save", url.Values{"studentName": {"Ayesha Khan"}, "cnic": {"3520212345671"}})
	expectPage(t, saved, http.StatusOK, "", `"cnic":"35202-1234567-1"`)

	// An incomplete page does not move, but keeps what was typed.
	expectPage(t, w.post("/personal-info.html/next", url.Values{"phone": {"03001234567"}}),
		http.StatusUnprocessableEntity, "",
		`value="Ayesha Khan"`, `value="0300-1234567"`, `class="is-invalid"`)

	expectPage(t, w.post("/personal-info.html/next", url.Values{
		"studentName": {"Ayesha Khan"},
		"cnic":        {"35202-1234567-1"},
		"dob":         {"2006-03-14"},
		"gender":      {"Female"},
		"phone":       {"0300-1234567"},
		"address":     {"House 12, Street 4, Lahore"},
	}), http.StatusOK, "/guardian-details.html", "<h2>Guardian Details</h2>")

	// Going back shows the saved answers.
	expectPage(t, w.post("/guardian-details.html/prev", url.Values{"fatherName": {"Tariq Khan"}}),
		http.StatusOK, "/personal-info.html", `value="35202-1234567-1"`, `<option value="Female" selected>`)

	expectPage(t, w.post("/personal-info.html/next", url.Values{}), http.StatusOK, "/guardian-details.html",
		`value="Tariq Khan"`)

	expectPage(t, w.post("/guardian-details.html/next", url.Values{
		"fatherName":  {"Tariq Khan"},
		"fatherCnic":  {"3520298765431"},
		"fatherPhone": {"03217654321"},
	}), http.StatusOK, "/academic-record.html")

	// Obtained marks above total block navigation.
	expectPage(t, w.post("/academic-record.html/next", url.Values{
		"lastQualification": {"Matric"},
		"obtainedMarks":     {"1200"},
		"totalMarks":        {"1100"},
		"boardUniversity":   {"BISE Lahore"},
	}), http.StatusUnprocessableEntity, "", "Marks obtained cannot exceed total marks")

	expectPage(t, w.post("/academic-record.html/next", url.Values{"obtainedMarks": {"950"}}),
		http.StatusOK, "/course-selection.html")

	// No trade chosen raises the alert.
	expectPage(t, w.post("/course-selection.html/next", url.Values{}),
		http.StatusUnprocessableEntity, "", `<div class="alert" role="alert">Please select a trade to continue</div>`)

	expectPage(t, w.post("/course-selection.html/next", url.Values{"trade": {"Electrician"}}),
		http.StatusOK, "/documents.html")

	expectPage(t, w.upload("/documents.html/next", map[string]string{
		"photo":      "passport.jpg",
		"cnicCopy":   "cnic.pdf",
		"resultCard": "matric-result.pdf",
	}), http.StatusOK, "/review.html",
		`<span class="summary-value">Ayesha Khan</span>`,
		`<span class="summary-value">35202-9876543-1</span>`,
		`<span class="summary-value">950</span>`,
		`<span class="summary-value">Electrician</span>`,
		`<span class="summary-label">Occupation</span><span class="summary-value">Not provided</span>`,
	)

	// Stored uploads satisfy the documents step on a second pass.
	expectPage(t, w.post("/documents.html/next", url.Values{}), http.StatusOK, "/review.html")

	expectPage(t, w.post("/review.html/submit", url.Values{}),
		http.StatusUnprocessableEntity, "", "Please agree to the declaration before submitting.")
	if got := w.draft()["studentName"]; got != "Ayesha Khan" {
		t.Fatalf("draft lost after declined submission: studentName = %q", got)
	}

	expectPage(t, w.post("/review.html/submit", url.Values{"finalTerms": {"on"}}),
		http.StatusOK, "", "Application Submitted", `#GTTI-`)

	// The draft is gone: every page starts empty.
	if d := w.draft(); len(d) != 0 {
		t.Errorf("draft after submission = %v, want empty", d)
	}
	page := w.get("/personal-info.html")
	expectPage(t, page, http.StatusOK, "", `name="studentName" value=""`)
}

func TestWizard_ResetClearsDraft(t *testing.T) {
	t.Parallel()
	w := newWizard(t)

	w.post("/personal-info.html/save", url.Values{"studentName": {"Bilal Ahmed"}})
	if got := w.draft()["studentName"]; got != "Bilal Ahmed" {
		t.Fatalf("studentName = %q, want %q", got, "Bilal Ahmed")
	}

	expectPage(t, w.post("/reset", url.Values{}), http.StatusOK, "/", "<h2>Personal Info</h2>")

	if d := w.draft(); len(d) != 0 {
		t.Errorf("draft after reset = %v, want empty", d)
	}
}

func TestWizard_DraftAPI(t *testing.T) {
	t.Parallel()
	w := newWizard(t)

	w.post("/course-selection.html/save", url.Values{"trade": {"Plumbing"}})

	summary := w.get("/api/v1/summary")
	expectPage(t, summary, http.StatusOK, "", `"title":"Target Course"`, `"value":"Plumbing"`)

	req, err := http.NewRequest(http.MethodDelete, w.base+"/api/v1/draft", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if got := w.do(req); got.status != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want %d", got.status, http.StatusNoContent)
	}
	if d := w.draft(); len(d) != 0 {
		t.Errorf("draft after DELETE = %v, want empty", d)
	}
}

func TestWizard_UnknownPage(t *testing.T) {
	t.Parallel()
	w := newWizard(t)

	expectPage(t, w.get("/favicon.ico"), http.StatusNotFound, "", "This page is not part of the registration.")
}

func TestWizard_LongestAnswersFit(t *testing.T) {
	t.Parallel()
	w := newWizard(t)

	def, err := formdef.Registration()
	if err != nil {
		t.Fatalf("formdef.Registration() error: %v", err)
	}

	// Angle brackets cost the most once the draft is encoded into a cookie.
	long := strings.Repeat("<", maxValueLength)
	want := make(map[string]string)
	for _, step := range def.Steps() {
		values := url.Values{}
		files := make(map[string]string)
		for _, f := range step.Fields {
			switch {
			case f.Kind == wizard.KindFile:
				files[f.Name] = strings.Repeat("<", maxValueLength-4) + ".pdf"
				want[f.Name] = files[f.Name]
			case f.Mask != "":
				values.Set(f.Name, strings.Repeat("9", len(f.Mask)))
				want[f.Name] = f.Mask.Apply(values.Get(f.Name))
			default:
				values.Set(f.Name, long)
				want[f.Name] = long
			}
		}
		if len(values) == 0 && len(files) == 0 {
			continue
		}

		var got response
		if len(files) > 0 {
			got = w.upload("/"+step.Page+"/save", files)
		} else {
			got = w.post("/"+step.Page+"/save", values)
		}
		if got.status != http.StatusOK {
			t.Fatalf("saving %s: status = %d, body = %s", step.Page, got.status, got.body)
		}
	}

	got := w.draft()
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %d runes, want the full %d-rune answer", name, len([]rune(got[name])), len([]rune(v)))
		}
	}
	expectPage(t, w.get("/review.html"), http.StatusOK, "", "<h2>Review &amp; Submit</h2>")
}

func TestCheckDraftCapacity_CookieStore(t *testing.T) {
	t.Parallel()

	def, err := formdef.Registration()
	if err != nil {
		t.Fatalf("formdef.Registration() error: %v", err)
	}
	store := storage.NewCookieStore(&config.DraftConfig{
		Secret: "capacity-test-secret-0123456789abcdefgh",
		TTL:    time.Hour,
	})

	if err := app.CheckDraftCapacity(def, maxValueLength, store.Fits); err != nil {
		t.Errorf("CheckDraftCapacity(%d) = %v, want nil", maxValueLength, err)
	}
	if err := app.CheckDraftCapacity(def, 500, store.Fits); !errors.Is(err, domain.ErrTooLarge) {
		t.Errorf("CheckDraftCapacity(500) = %v, want ErrTooLarge", err)
	}
}
