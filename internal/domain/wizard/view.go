package wizard

import "github.com/jsamuelsen11/gtti-registration/internal/domain/draft"

// StepState is the sidebar state of a step relative to the current one.
type StepState string

const (
	StepPending   StepState = "pending"
	StepActive    StepState = "active"
	StepCompleted StepState = "completed"
)

// ProgressItem is one entry of the step sidebar.
type ProgressItem struct {
	Number int
	Title  string
	Page   string
	State  StepState
}

// Progress lists every step with its state relative to current.
func (d *Definition) Progress(current int) []ProgressItem {
	items := make([]ProgressItem, 0, len(d.steps))
	for _, s := range d.steps {
		state := StepPending
		switch {
		case s.Number == current:
			state = StepActive
		case s.Number < current:
			state = StepCompleted
		}
		items = append(items, ProgressItem{
			Number: s.Number,
			Title:  s.Title,
			Page:   s.Page,
			State:  state,
		})
	}
	return items
}

// OptionView is an option of a hydrated select or radio field.
type OptionView struct {
	Option
	Selected bool
}

// FieldView is a field of the current page populated from the draft.
type FieldView struct {
	Field
	Value   string
	Options []OptionView
	// StoredFile is the name of a previously uploaded file. File inputs
	// cannot be re-populated, so it is only shown as a hint.
	StoredFile string
	Invalid    bool
	Error      string
}

// Hydrate populates every field of the step from the draft. Radio and
// select options are matched by value; file fields keep an empty value.
func Hydrate(s Step, d draft.Draft) []FieldView {
	views := make([]FieldView, 0, len(s.Fields))
	for _, f := range s.Fields {
		stored, ok := d[f.Name]
		fv := FieldView{Field: f}

		switch {
		case f.Kind == KindFile:
			fv.StoredFile = stored
		case f.Kind.HasOptions():
			fv.Options = make([]OptionView, 0, len(f.Options))
			for _, o := range f.Options {
				fv.Options = append(fv.Options, OptionView{Option: o, Selected: ok && o.Value == stored})
			}
			if f.HasOption(stored) {
				fv.Value = stored
			}
		default:
			fv.Value = stored
		}

		views = append(views, fv)
	}
	return views
}

// MarkInvalid flags the views named in errs with their messages.
func MarkInvalid(views []FieldView, errs map[string]string) {
	for i := range views {
		if msg, ok := errs[views[i].Name]; ok {
			views[i].Invalid = true
			views[i].Error = msg
		}
	}
}
