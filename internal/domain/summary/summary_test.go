package summary_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/summary"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
)

func newDefinition(t *testing.T) *wizard.Definition {
	t.Helper()
	steps := []wizard.Step{
		{
			Number: 1, Page: "personal-info.html", Title: "Personal Info",
			Fields: []wizard.Field{
				{Name: "studentName", Label: "Student Name", Kind: wizard.KindText},
				{Name: "cnic", Label: "CNIC / B-Form", Kind: wizard.KindText},
			},
		},
		{
			Number: 2, Page: "course-selection.html", Title: "Course Selection",
			Fields: []wizard.Field{
				{Name: "trade", Label: "Selected Trade", Kind: wizard.KindRadio,
					Options: []wizard.Option{{Value: "Welding", Label: "Welding"}}},
			},
		},
		{Number: 3, Page: "review.html", Title: "Review"},
	}
	def, err := wizard.NewDefinition(
		steps,
		nil,
		[]wizard.SummaryGroup{
			{Title: "Personal Info", Fields: []string{"studentName", "cnic"}},
			{Title: "Target Course", Fields: []string{"trade"}},
		},
		"Not provided",
		wizard.Submission{AgreementField: "finalTerms"},
	)
	if err != nil {
		t.Fatalf("NewDefinition error: %v", err)
	}
	return def
}

func TestBuild(t *testing.T) {
	t.Parallel()
	def := newDefinition(t)

	got := summary.Build(def, draft.Draft{
		"studentName": "Ayesha Khan",
		"cnic":        "",
		"unrelated":   "ignored",
	})

	want := []summary.Group{
		{Title: "Personal Info", Items: []summary.Item{
			{Field: "studentName", Label: "Student Name", Value: "Ayesha Khan"},
			{Field: "cnic", Label: "CNIC / B-Form", Value: "Not provided", Missing: true},
		}},
		{Title: "Target Course", Items: []summary.Item{
			{Field: "trade", Label: "Selected Trade", Value: "Not provided", Missing: true},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyDraft(t *testing.T) {
	t.Parallel()
	def := newDefinition(t)

	for _, g := range summary.Build(def, draft.New()) {
		for _, it := range g.Items {
			if !it.Missing || it.Value != "Not provided" {
				t.Errorf("%s = %+v, want placeholder", it.Field, it)
			}
		}
	}
}
