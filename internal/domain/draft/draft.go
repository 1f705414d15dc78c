// Package draft defines the Registration Draft: the flat field-name to value
// record that accumulates an applicant's answers across every wizard page.
package draft

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// StorageKey is the fixed key under which the draft is persisted in the
// applicant's browser store.
const StorageKey = "gtti_registration_data"

// Draft maps field names to their last entered values.
type Draft map[string]string

// New returns an empty draft.
func New() Draft {
	return make(Draft)
}

// Decode parses a JSON-encoded draft. Non-string values are rendered with
// their JSON text so that hand-edited or legacy records still load.
func Decode(raw string) (Draft, error) {
	if raw == "" {
		return New(), nil
	}

	var generic map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil, fmt.Errorf("decoding draft: %w", err)
	}

	d := make(Draft, len(generic))
	for k, v := range generic {
		switch tv := v.(type) {
		case string:
			d[k] = tv
		case nil:
			// Dropped: a null carries no answer.
		default:
			b, err := json.Marshal(tv)
			if err != nil {
				return nil, fmt.Errorf("decoding draft field %q: %w", k, err)
			}
			d[k] = string(b)
		}
	}
	return d, nil
}

// Encode serializes the draft as a JSON object.
func (d Draft) Encode() (string, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(d))
	if err != nil {
		return "", fmt.Errorf("encoding draft: %w", err)
	}
	return string(b), nil
}

// Merge overwrites the draft with the given values. Fields absent from
// values are left untouched. It returns the names of fields whose stored
// value changed, sorted.
func (d Draft) Merge(values map[string]string) []string {
	var changed []string
	for k, v := range values {
		if old, ok := d[k]; ok && old == v {
			continue
		}
		d[k] = v
		changed = append(changed, k)
	}
	slices.Sort(changed)
	return changed
}

// Value returns the stored value for name, or placeholder when the field is
// missing or empty.
func (d Draft) Value(name, placeholder string) string {
	if v := d[name]; v != "" {
		return v
	}
	return placeholder
}

// Clone returns an independent copy of the draft.
func (d Draft) Clone() Draft {
	if d == nil {
		return New()
	}
	return maps.Clone(d)
}

// IsEmpty reports whether the draft holds no fields.
func (d Draft) IsEmpty() bool {
	return len(d) == 0
}
