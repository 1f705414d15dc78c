package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/summary"
)

func TestToDraftResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		draft     draft.Draft
		wantCount int
	}{
		{name: "nil draft", draft: nil, wantCount: 0},
		{name: "empty draft", draft: draft.Draft{}, wantCount: 0},
		{
			name:      "fields copied",
			draft:     draft.Draft{"studentName": "Ayesha Khan", "trade": "Electrician"},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.ToDraftResponse(tt.draft)
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if got.Fields == nil {
				t.Fatal("Fields = nil, want non-nil map")
			}
			for k, v := range tt.draft {
				if got.Fields[k] != v {
					t.Errorf("Fields[%q] = %q, want %q", k, got.Fields[k], v)
				}
			}
		})
	}
}

func TestToDraftResponse_EmptyEncodesAsObject(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToDraftResponse(nil))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(b), `{"fields":{},"count":0}`; got != want {
		t.Errorf("JSON = %s, want %s", got, want)
	}
}

func TestToDraftResponse_DoesNotAliasDraft(t *testing.T) {
	t.Parallel()

	d := draft.Draft{"cnic": "35202-1234567-1"}
	got := dto.ToDraftResponse(d)
	got.Fields["cnic"] = "changed"

	if d["cnic"] != "35202-1234567-1" {
		t.Errorf("draft mutated through response: %q", d["cnic"])
	}
}

func TestToSummaryResponse(t *testing.T) {
	t.Parallel()

	groups := []summary.Group{
		{
			Title: "Personal Info",
			Items: []summary.Item{
				{Field: "studentName", Label: "Student Name", Value: "Ayesha Khan"},
				{Field: "phone", Label: "Phone Number", Value: "Not provided", Missing: true},
			},
		},
		{
			Title: "Target Course",
			Items: []summary.Item{{Field: "trade", Label: "Selected Trade", Value: "Welder"}},
		},
	}

	want := dto.SummaryResponse{Groups: []dto.SummaryGroupResponse{
		{
			Title: "Personal Info",
			Items: []dto.SummaryItemResponse{
				{Field: "studentName", Label: "Student Name", Value: "Ayesha Khan"},
				{Field: "phone", Label: "Phone Number", Value: "Not provided", Missing: true},
			},
		},
		{
			Title: "Target Course",
			Items: []dto.SummaryItemResponse{{Field: "trade", Label: "Selected Trade", Value: "Welder"}},
		},
	}}

	if diff := cmp.Diff(want, dto.ToSummaryResponse(groups)); diff != "" {
		t.Errorf("ToSummaryResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToSummaryResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToSummaryResponse(nil)
	if got.Groups == nil || len(got.Groups) != 0 {
		t.Errorf("Groups = %#v, want empty non-nil slice", got.Groups)
	}
}
