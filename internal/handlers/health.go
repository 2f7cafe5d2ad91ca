package handlers

import (
	"net/http"

	"github.com/assetflow/backend/internal/workspace"
)

// HealthHandler responds with service health information.
type HealthHandler struct {
	Workspace *workspace.Workspace
}

// Handle implements GET /healthz. The reference field reports whether the
// remote dataset or the embedded fallback is in use.
func (h HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	payload := map[string]string{
		"status": "ok",
	}
	if h.Workspace != nil {
		payload["reference"] = h.Workspace.Dataset.Version
	}

	respondJSON(r.Context(), w, http.StatusOK, payload)
}
