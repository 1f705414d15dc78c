package wizard

import (
	"strings"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
)

// maxLeadingInt bounds leadingInt well below overflow.
const maxLeadingInt = 1 << 50

const (
	msgRequired   = "is required"
	msgFormat     = "does not match the expected format"
	msgChoice     = "is not one of the available options"
	msgNotGreater = "must not exceed "
)

// Validate checks the values a step would be left with against its field
// and cross-field rules. Values are the draft as it stands after the
// step's inputs were saved, so a file field already holding a stored file
// name counts as filled. It returns a *domain.ValidationError listing every
// failing field, or nil. Optional fields may stay empty, but once filled
// they are held to their pattern and options like required ones.
func (d *Definition) Validate(s Step, values map[string]string) error {
	fields := make(map[string]string)

	for _, f := range s.Fields {
		v := strings.TrimSpace(values[f.Name])
		switch {
		case v == "":
			if f.Required {
				fields[f.Name] = failure(f, msgRequired)
			}
		case f.Pattern != nil && !f.Pattern.MatchString(v):
			fields[f.Name] = failure(f, msgFormat)
		case f.Kind.HasOptions() && !f.HasOption(v):
			fields[f.Name] = failure(f, msgChoice)
		}
	}

	for _, r := range s.Rules {
		if r.Kind != RuleNotGreater {
			continue
		}
		a, okA := leadingInt(values[r.Field])
		b, okB := leadingInt(values[r.Other])
		if okA && okB && a > b {
			msg := r.Message
			if msg == "" {
				msg = msgNotGreater + d.Label(r.Other)
			}
			fields[r.Field] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func failure(f Field, fallback string) string {
	if f.Message != "" {
		return f.Message
	}
	return fallback
}

// leadingInt parses an optionally signed run of leading decimal digits,
// ignoring surrounding whitespace and anything after the digits. ok is
// false when no digit is found.
func leadingInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	for i := 0; i < len(s) && isDigit(s[i]) && n < maxLeadingInt; i++ {
		n = n*10 + int(s[i]-'0')
		ok = true
	}
	if neg {
		n = -n
	}
	return n, ok
}
