package ports_test

import (
	"testing"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

func newView(fields ...wizard.Field) *ports.PageView {
	views := make([]wizard.FieldView, 0, len(fields))
	for _, f := range fields {
		views = append(views, wizard.FieldView{Field: f})
	}
	return &ports.PageView{Fields: views}
}

func TestApplyErrors_InlineOnly(t *testing.T) {
	t.Parallel()

	v := newView(wizard.Field{Name: "cnic", Kind: wizard.KindText})
	v.ApplyErrors(&domain.ValidationError{Fields: map[string]string{"cnic": "is required"}})

	if !v.Fields[0].Invalid || v.Fields[0].Error != "is required" {
		t.Errorf("cnic view = %+v, want invalid", v.Fields[0])
	}
	if v.Alert != "" {
		t.Errorf("Alert = %q, want none for inline failures", v.Alert)
	}
}

func TestApplyErrors_RadioRaisesAlert(t *testing.T) {
	t.Parallel()

	v := newView(wizard.Field{Name: "trade", Kind: wizard.KindRadio})
	v.ApplyErrors(&domain.ValidationError{Fields: map[string]string{"trade": "Please select a trade to continue"}})

	if v.Alert != "Please select a trade to continue" {
		t.Errorf("Alert = %q, want the trade prompt", v.Alert)
	}
}

func TestApplyErrors_OffPageFieldRaisesAlert(t *testing.T) {
	t.Parallel()

	v := newView()
	v.ApplyErrors(&domain.ValidationError{Fields: map[string]string{
		"finalTerms": "Please agree to the declaration before submitting.",
	}})

	if v.Alert != "Please agree to the declaration before submitting." {
		t.Errorf("Alert = %q, want the declaration prompt", v.Alert)
	}
}

func TestApplyErrors_Nil(t *testing.T) {
	t.Parallel()

	v := newView(wizard.Field{Name: "cnic", Kind: wizard.KindText})
	v.ApplyErrors(nil)

	if v.Fields[0].Invalid || v.Alert != "" {
		t.Errorf("view changed by nil errors: %+v", v)
	}
}
