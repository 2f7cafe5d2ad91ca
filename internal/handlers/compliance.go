package handlers

import (
	"errors"
	"net/http"

	"github.com/assetflow/backend/internal/compliance"
	"github.com/assetflow/backend/internal/workspace"
)

// ComplianceHandler serves the compliance dashboard and attribution text.
type ComplianceHandler struct {
	Workspace *workspace.Workspace
}

// Summary handles GET /api/v1/compliance.
func (h ComplianceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, h.Workspace.ComplianceSummary())
}

// Attribution handles GET /api/v1/compliance/attribution?format=html|text|social.
func (h ComplianceHandler) Attribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	format := r.URL.Query().Get("format")
	text, err := h.Workspace.Attribution(format)
	if err != nil {
		if errors.Is(err, compliance.ErrUnknownFormat) {
			respondError(ctx, w, http.StatusBadRequest, "format must be html, text or social")
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, "failed to generate attribution")
		return
	}

	parsed, _ := compliance.ParseFormat(format)
	respondJSON(ctx, w, http.StatusOK, attributionResponse{Format: parsed, Text: text})
}

type attributionResponse struct {
	Format compliance.Format `json:"format"`
	Text   string            `json:"text"`
}
