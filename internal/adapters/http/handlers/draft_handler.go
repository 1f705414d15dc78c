package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// DraftHandler serves the JSON view of the applicant's draft.
type DraftHandler struct {
	svc    ports.RegistrationService
	stores StoreOpener
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(svc ports.RegistrationService, stores StoreOpener) *DraftHandler {
	return &DraftHandler{svc: svc, stores: stores}
}

// GetDraft handles GET /api/v1/draft.
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Draft(r.Context(), h.stores.Open(w, r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.ToDraftResponse(d))
}

// DeleteDraft handles DELETE /api/v1/draft.
func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context(), h.stores.Open(w, r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/v1/summary.
func (h *DraftHandler) Summary(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Summary(r.Context(), h.stores.Open(w, r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.ToSummaryResponse(groups))
}

// Mask handles POST /api/v1/mask.
func (h *DraftHandler) Mask(w http.ResponseWriter, r *http.Request) {
	var req dto.MaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	value, err := h.svc.Mask(req.Field, req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MaskResponse{Field: req.Field, Value: value})
}
