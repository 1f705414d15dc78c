package dto

import (
	"strings"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
)

const msgRequired = "is required"

// MaskRequest represents the JSON body of POST /api/v1/mask.
type MaskRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Validate checks that the field name is present. An empty value is
// allowed and masks to an empty string.
// Returns a *domain.ValidationError if any checks fail.
func (r *MaskRequest) Validate() error {
	if strings.TrimSpace(r.Field) == "" {
		return &domain.ValidationError{Fields: map[string]string{"field": msgRequired}}
	}
	return nil
}
