// Package textclean normalizes user-submitted form values before they are
// stored and sanitizes the markup of form hints before it is rendered.
package textclean

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// Plain trims surrounding whitespace, drops invalid UTF-8 and control
// characters other than newline and tab, and cuts the result to at most
// limit runes when limit is positive. Text that looks like markup is kept
// as typed; templates escape it on output.
func Plain(raw string, limit int) string {
	s := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(raw, ""))
	return truncate(strings.TrimSpace(s), limit)
}

// Values applies Plain to every value of the map, returning a new map.
func Values(in map[string]string, limit int) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = Plain(v, limit)
	}
	return out
}

// Hint sanitizes field hint markup down to inline formatting. The result
// may be emitted into a page without escaping.
func Hint(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(hintSanitizer().Sanitize(trimmed))
}

func hintSanitizer() *bluemonday.Policy {
	hintPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "small", "code", "br")
		hintPolicy = policy
	})
	return hintPolicy
}

func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
