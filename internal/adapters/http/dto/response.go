// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/summary"
)

// SaveResponse is returned by POST /{page}/save. Fields holds the values
// as stored, with masks applied.
type SaveResponse struct {
	Fields map[string]string `json:"fields"`
}

// DraftResponse represents the stored registration draft.
type DraftResponse struct {
	Fields map[string]string `json:"fields"`
	Count  int               `json:"count"`
}

// ToDraftResponse converts a draft to an HTTP response DTO. A nil draft
// is reported as an empty object rather than null.
func ToDraftResponse(d draft.Draft) DraftResponse {
	fields := make(map[string]string, len(d))
	for k, v := range d {
		fields[k] = v
	}
	return DraftResponse{Fields: fields, Count: len(fields)}
}

// SummaryItemResponse is one labeled value of the review summary.
type SummaryItemResponse struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Missing bool   `json:"missing"`
}

// SummaryGroupResponse is a titled section of the review summary.
type SummaryGroupResponse struct {
	Title string                `json:"title"`
	Items []SummaryItemResponse `json:"items"`
}

// SummaryResponse represents the grouped review summary.
type SummaryResponse struct {
	Groups []SummaryGroupResponse `json:"groups"`
}

// ToSummaryResponse converts summary groups to an HTTP response DTO.
func ToSummaryResponse(groups []summary.Group) SummaryResponse {
	out := make([]SummaryGroupResponse, len(groups))
	for i, g := range groups {
		items := make([]SummaryItemResponse, len(g.Items))
		for j, it := range g.Items {
			items[j] = SummaryItemResponse{
				Field:   it.Field,
				Label:   it.Label,
				Value:   it.Value,
				Missing: it.Missing,
			}
		}
		out[i] = SummaryGroupResponse{Title: g.Title, Items: items}
	}
	return SummaryResponse{Groups: out}
}

// MaskResponse carries a value with its field's mask applied.
type MaskResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each dependency (draft store, intake API) to "ok" or its error.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
