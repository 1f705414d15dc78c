package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/logging"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// StoreOpener hands out the applicant's key-value store for one request.
// The returned store may set cookies on w, so it must be opened before the
// response is written.
type StoreOpener interface {
	Open(w http.ResponseWriter, r *http.Request) ports.KeyValueStore
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// Form bodies may carry document uploads. Only the file names are kept, so
// parts beyond maxFormMemory spill to temporary files and are removed once
// the names are read.
const (
	maxFormBytes  = 10 << 20
	maxFormMemory = 1 << 20
)

// formInput reads a urlencoded or multipart form body as a flat map. Only
// the first value of a repeated key counts. An uploaded file contributes
// its file name under the input's name.
func formInput(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var err error
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("form body over %d bytes: %w", tooLarge.Limit, domain.ErrTooLarge)
		}
		return nil, &domain.ValidationError{Fields: map[string]string{"body": "invalid form data"}}
	}

	input := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			input[key] = values[0]
		}
	}

	if r.MultipartForm != nil {
		for key, files := range r.MultipartForm.File {
			if len(files) > 0 && files[0].Filename != "" {
				input[key] = files[0].Filename
			}
		}
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to remove upload spill files",
				slog.Any("error", err),
			)
		}
	}

	return input, nil
}

// writeHTML renders into a buffer first so a template failure can still be
// reported as a 500 instead of a truncated page. Pages carry applicant
// data and are never cached.
func writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirectTo sends the browser to a wizard page with 303 See Other, so
// reloading the next page does not repost the form.
func redirectTo(w http.ResponseWriter, r *http.Request, page string) {
	http.Redirect(w, r, "/"+page, http.StatusSeeOther)
}
