package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/views"
	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/logging"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// indexPage is the page served at "/". It resolves to the first step.
const indexPage = "index.html"

const (
	msgSubmitFailed = "We could not submit your application. Your answers are saved, please try again."
	msgUnexpected   = "Something went wrong. Please try again."
	msgTimeout      = "The request took too long. Please try again."
	msgTooLarge     = "Some answers are too long to be saved. Please shorten them and try again."
)

// WizardHandler serves the registration wizard pages. Each request opens
// the applicant's draft store and hands it to the service.
type WizardHandler struct {
	svc    ports.RegistrationService
	stores StoreOpener
	views  *views.Renderer
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(svc ports.RegistrationService, stores StoreOpener, renderer *views.Renderer) *WizardHandler {
	return &WizardHandler{svc: svc, stores: stores, views: renderer}
}

// Index handles GET /.
func (h *WizardHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, indexPage)
}

// Show handles GET /{page}.
func (h *WizardHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, chi.URLParam(r, "page"))
}

// Save handles POST /{page}/save. It is called on every input or change
// event and answers with the values as stored.
func (h *WizardHandler) Save(w http.ResponseWriter, r *http.Request) {
	input, err := formInput(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	values, err := h.svc.Save(r.Context(), h.stores.Open(w, r), chi.URLParam(r, "page"), input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SaveResponse{Fields: values})
}

// Next handles POST /{page}/next. An incomplete page is shown again with
// its invalid fields marked.
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	input, err := formInput(w, r)
	if err != nil {
		h.refuse(w, r, page, err)
		return
	}

	store := h.stores.Open(w, r)
	nav, err := h.svc.Next(r.Context(), store, page, input)

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if nav != nil {
			page = nav.From.Page
		}
		h.reshow(w, r, store, page, http.StatusUnprocessableEntity, func(v *ports.PageView) {
			v.ApplyErrors(verr)
		})
		return
	case err != nil:
		h.refuse(w, r, page, err)
		return
	}

	redirectTo(w, r, nav.To.Page)
}

// Previous handles POST /{page}/prev.
func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	input, err := formInput(w, r)
	if err != nil {
		h.refuse(w, r, page, err)
		return
	}

	nav, err := h.svc.Previous(r.Context(), h.stores.Open(w, r), page, input)
	if err != nil {
		h.refuse(w, r, page, err)
		return
	}

	redirectTo(w, r, nav.To.Page)
}

// Submit handles POST /{page}/submit on the final page.
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	input, err := formInput(w, r)
	if err != nil {
		h.refuse(w, r, page, err)
		return
	}

	store := h.stores.Open(w, r)
	app, err := h.svc.Submit(r.Context(), store, page, input)

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.reshow(w, r, store, page, http.StatusUnprocessableEntity, func(v *ports.PageView) {
			v.ApplyErrors(verr)
		})
		return
	case errors.Is(err, domain.ErrNotFound):
		h.fail(w, r, err)
		return
	case err != nil:
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "submission failed",
			slog.String("page", page),
			slog.Any("error", err),
		)
		h.reshow(w, r, store, page, dto.StatusCode(err), func(v *ports.PageView) {
			v.Alert = msgSubmitFailed
		})
		return
	}

	writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.views.Success(out, app)
	})
}

// Reset handles POST /reset. The draft is dropped and the applicant starts
// over on the first page.
func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context(), h.stores.Open(w, r)); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WizardHandler) show(w http.ResponseWriter, r *http.Request, page string) {
	view, err := h.svc.Page(r.Context(), h.stores.Open(w, r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.views.Page(out, view)
	})
}

// reshow renders page again from the draft as it now stands, with mark
// applied to the view.
func (h *WizardHandler) reshow(w http.ResponseWriter, r *http.Request, store ports.KeyValueStore, page string, status int, mark func(*ports.PageView)) {
	view, err := h.svc.Page(r.Context(), store, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	mark(view)
	writeHTML(w, r, status, func(out io.Writer) error {
		return h.views.Page(out, view)
	})
}

// refuse answers a form post that could not be taken. Input too large to
// read or to store is reported on the page itself, which still shows the
// answers saved so far; anything else goes to fail.
func (h *WizardHandler) refuse(w http.ResponseWriter, r *http.Request, page string, err error) {
	if !errors.Is(err, domain.ErrTooLarge) {
		h.fail(w, r, err)
		return
	}
	logging.FromContext(r.Context()).WarnContext(r.Context(), "form post too large",
		slog.String("page", page),
		slog.Any("error", err),
	)
	h.reshow(w, r, h.stores.Open(w, r), page, http.StatusRequestEntityTooLarge, func(v *ports.PageView) {
		v.Alert = msgTooLarge
	})
}

// fail shows an error page. Details of unexpected errors are logged, never
// shown.
func (h *WizardHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := dto.StatusCode(err)

	var message string
	switch status {
	case http.StatusNotFound:
		message = "This page is not part of the registration."
	case http.StatusBadRequest:
		message = "The submitted form could not be read."
	case http.StatusRequestEntityTooLarge:
		message = "The submitted form is too large."
	default:
		message = msgUnexpected
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "wizard request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	writeHTML(w, r, status, func(out io.Writer) error {
		return h.views.Error(out, status, message)
	})
}

// Abort answers requests that middleware cuts short. Browser navigations
// get the error page; the JSON API and save-on-input calls get a problem
// document.
func Abort(renderer *views.Renderer) func(http.ResponseWriter, *http.Request, int) {
	return func(w http.ResponseWriter, r *http.Request, status int) {
		if wantsJSON(r) {
			dto.WriteStatus(w, r, status)
			return
		}

		message := msgUnexpected
		if status == http.StatusGatewayTimeout {
			message = msgTimeout
		}
		writeHTML(w, r, status, func(out io.Writer) error {
			return renderer.Error(out, status, message)
		})
	}
}

func wantsJSON(r *http.Request) bool {
	p := r.URL.Path
	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/health/") || strings.HasSuffix(p, "/save")
}
