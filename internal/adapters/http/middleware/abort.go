package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/dto"
)

// AbortFunc writes the response for a request that middleware cuts short
// before the handler could answer.
type AbortFunc func(w http.ResponseWriter, r *http.Request, status int)

// AbortOption configures how Recovery and Timeout answer aborted requests.
type AbortOption func(*AbortFunc)

// WithAbort replaces the default problem+json response. The wizard uses it
// to render an HTML error page for browser navigations.
func WithAbort(fn AbortFunc) AbortOption {
	return func(a *AbortFunc) {
		if fn != nil {
			*a = fn
		}
	}
}

func abortWith(opts []AbortOption) AbortFunc {
	fn := AbortFunc(dto.WriteStatus)
	for _, opt := range opts {
		opt(&fn)
	}
	return fn
}
