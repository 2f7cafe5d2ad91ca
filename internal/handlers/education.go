package handlers

import (
	"net/http"

	"github.com/assetflow/backend/internal/licensing"
	"github.com/assetflow/backend/internal/reference"
	"github.com/assetflow/backend/internal/workspace"
)

// EducationHandler serves the license guide and the loaded reference tables.
type EducationHandler struct {
	Workspace *workspace.Workspace
}

// Licenses handles GET /api/v1/licenses.
func (h EducationHandler) Licenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string][]licensing.License{
		"licenses": h.Workspace.Licenses.Licenses(),
	})
}

// Reference handles GET /api/v1/reference.
func (h EducationHandler) Reference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ds := h.Workspace.Dataset
	respondJSON(r.Context(), w, http.StatusOK, referenceResponse{
		Dataset:      ds,
		LicenseCodes: ds.LicenseCodes(),
	})
}

type referenceResponse struct {
	reference.Dataset
	LicenseCodes []string `json:"licenseCodes"`
}
