// Package intake implements ports.SubmissionGateway: an HTTP client that
// forwards confirmed applications to an intake API, and a simulated
// gateway that only waits. Intake error responses are translated into
// domain errors here so that nothing upstream sees HTTP details.
package intake

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 1 << 20

// problemDetail is an RFC 9457 problem document returned by the intake API.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []fieldReport `json:"errors"`
}

// fieldReport names one rejected application field.
type fieldReport struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an intake error response to a domain error.
// Field reports on 400 and 422 answers become a *domain.ValidationError
// keyed by draft field name.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("intake rejected application: %s: %w", detail, domain.ErrValidation)

	case code == http.StatusConflict:
		return fmt.Errorf("intake: %s: %w", detail, domain.ErrConflict)

	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("intake: %s: %w", detail, domain.ErrForbidden)

	case code == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("intake: %s: %w", detail, domain.ErrTooLarge)

	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("intake: %s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("intake: unexpected status %d: %s", code, detail)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError keys reports by field name, dropping the "fields."
// or "body.fields." location prefix.
func toValidationError(reports []fieldReport) *domain.ValidationError {
	fields := make(map[string]string, len(reports))
	for _, r := range reports {
		name := strings.TrimPrefix(r.Location, "body.")
		name = strings.TrimPrefix(name, "fields.")
		fields[name] = r.Message
	}
	return &domain.ValidationError{Fields: fields}
}
