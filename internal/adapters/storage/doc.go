// Package storage implements ports.KeyValueStore for the applicant's
// browser. Each store hands out a per-request view bound to one
// http.ResponseWriter and *http.Request:
//
//   - CookieStore keeps every key in its own signed cookie, so the draft
//     never leaves the applicant's browser.
//   - MemoryStore keeps values in process, keyed by a random session cookie,
//     and forgets them after the configured TTL. It is meant for development.
package storage

import (
	"net/http"
	"time"
)

// SessionCookieName names the cookie holding a MemoryStore session id.
const SessionCookieName = "gtti_session"

// Clock returns the current time.
type Clock func() time.Time

// setCookie adds c to the response, dropping any Set-Cookie for the same
// name written earlier in the request so the browser sees only the last
// value.
func setCookie(w http.ResponseWriter, c *http.Cookie) {
	h := w.Header()
	var kept []string
	for _, line := range h.Values("Set-Cookie") {
		if parsed, err := http.ParseSetCookie(line); err == nil && parsed.Name == c.Name {
			continue
		}
		kept = append(kept, line)
	}
	h.Del("Set-Cookie")
	for _, line := range kept {
		h.Add("Set-Cookie", line)
	}
	http.SetCookie(w, c)
}
