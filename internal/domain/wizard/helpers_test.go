package wizard_test

import (
	"regexp"
	"testing"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
)

const (
	cnicMask  wizard.Mask = "xxxxx-xxxxxxx-x"
	phoneMask wizard.Mask = "xxxx-xxxxxxx"
)

func anchored(p string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + p + `)$`)
}

// testSteps mirrors the registration wizard closely enough to exercise
// every rule kind.
func testSteps() []wizard.Step {
	return []wizard.Step{
		{
			Number: 1, Page: "personal-info.html", Title: "Personal Info",
			Fields: []wizard.Field{
				{Name: "studentName", Label: "Student Name", Kind: wizard.KindText, Required: true},
				{Name: "cnic", Label: "CNIC / B-Form", Kind: wizard.KindText, Required: true,
					Mask: cnicMask, Pattern: anchored(`[0-9]{5}-[0-9]{7}-[0-9]`)},
				{Name: "gender", Label: "Gender", Kind: wizard.KindSelect, Required: true,
					Options: []wizard.Option{{Value: "Male", Label: "Male"}, {Value: "Female", Label: "Female"}}},
				{Name: "phone", Label: "Phone Number", Kind: wizard.KindTel, Required: true, Mask: phoneMask},
			},
		},
		{
			Number: 2, Page: "academic-record.html", Title: "Academic Record",
			Fields: []wizard.Field{
				{Name: "obtainedMarks", Label: "Marks Obtained", Kind: wizard.KindNumber, Required: true,
					Pattern: anchored(`[0-9]+`)},
				{Name: "totalMarks", Label: "Total Marks", Kind: wizard.KindNumber, Required: true,
					Pattern: anchored(`[0-9]+`)},
			},
			Rules: []wizard.Rule{{Kind: wizard.RuleNotGreater, Field: "obtainedMarks", Other: "totalMarks"}},
		},
		{
			Number: 3, Page: "course-selection.html", Title: "Course Selection",
			Fields: []wizard.Field{
				{Name: "trade", Label: "Selected Trade", Kind: wizard.KindRadio, Required: true,
					Message: "Please select a trade to continue",
					Options: []wizard.Option{{Value: "Welding", Label: "Welding"}, {Value: "Electrician", Label: "Electrician"}}},
			},
		},
		{
			Number: 4, Page: "documents.html", Title: "Documents",
			Fields: []wizard.Field{
				{Name: "photo", Label: "Photograph", Kind: wizard.KindFile, Required: true},
			},
		},
		{Number: 5, Page: "review.html", Title: "Review"},
	}
}

func testDefinition(t *testing.T) *wizard.Definition {
	t.Helper()
	def, err := wizard.NewDefinition(
		testSteps(),
		map[string]int{"index.html": 1},
		[]wizard.SummaryGroup{
			{Title: "Personal Info", Fields: []string{"studentName", "cnic"}},
			{Title: "Target Course", Fields: []string{"trade"}},
		},
		"Not provided",
		wizard.Submission{IDPrefix: "GTTI", AgreementField: "finalTerms"},
	)
	if err != nil {
		t.Fatalf("NewDefinition error: %v", err)
	}
	return def
}
