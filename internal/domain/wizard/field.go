package wizard

import "regexp"

// Kind is the kind of form control a field renders as.
type Kind string

const (
	KindText     Kind = "text"
	KindTel      Kind = "tel"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindRadio    Kind = "radio"
	KindFile     Kind = "file"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindTel, KindNumber, KindDate, KindTextarea, KindSelect, KindRadio, KindFile:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the kind renders a fixed option list.
func (k Kind) HasOptions() bool {
	return k == KindSelect || k == KindRadio
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Option is one choice of a select or radio field.
type Option struct {
	Value string
	Label string
}

// Field describes one named form control of a wizard step.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Required    bool
	Pattern     *regexp.Regexp
	Mask        Mask
	Options     []Option
	Placeholder string
	// Hint is sanitized inline markup shown under the control.
	Hint string
	// Message replaces the default failure text when set.
	Message string
}

// HasOption reports whether value is one of the field's options.
func (f Field) HasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// RuleKind identifies a cross-field validation rule.
type RuleKind string

// RuleNotGreater rejects a step when the integer value of Field exceeds the
// integer value of Other.
const RuleNotGreater RuleKind = "not_greater"

// Rule is a validation constraint spanning two fields of the same step.
type Rule struct {
	Kind    RuleKind
	Field   string
	Other   string
	Message string
}

// Collect picks the step's fields out of submitted input, ready to merge
// into the draft. Keys that are not fields of the step are ignored. An
// empty radio or file value means nothing was chosen or uploaded and is
// skipped so the stored answer survives. Masked fields are re-masked.
func (s Step) Collect(input map[string]string) map[string]string {
	out := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := input[f.Name]
		if !ok {
			continue
		}
		if v == "" && (f.Kind == KindRadio || f.Kind == KindFile) {
			continue
		}
		if f.Mask != "" {
			v = f.Mask.Apply(v)
		}
		out[f.Name] = v
	}
	return out
}
