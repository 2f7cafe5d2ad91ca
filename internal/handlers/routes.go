package handlers

import (
	"net/http"

	"github.com/assetflow/backend/internal/workspace"
)

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{Workspace: deps.Workspace}
	discovery := DiscoveryHandler{Workspace: deps.Workspace}
	lib := LibraryHandler{Workspace: deps.Workspace, Archiver: deps.Archiver, Limiter: deps.Limiter}
	projects := ProjectHandler{Workspace: deps.Workspace, Limiter: deps.Limiter}
	compliance := ComplianceHandler{Workspace: deps.Workspace}
	education := EducationHandler{Workspace: deps.Workspace}
	reports := ReportHandler{Workspace: deps.Workspace}

	mux.HandleFunc("/healthz", health.Handle)

	mux.HandleFunc("/api/v1/assets", discovery.List)
	mux.HandleFunc("/api/v1/assets/search", discovery.Search)
	mux.HandleFunc("/api/v1/assets/filters", discovery.Filters)
	mux.HandleFunc("/api/v1/assets/more", discovery.More)
	mux.HandleFunc("/api/v1/assets/{id}", discovery.Preview)

	mux.HandleFunc("/api/v1/library", lib.Overview)
	mux.HandleFunc("/api/v1/library/assets", lib.SaveAsset)
	mux.HandleFunc("/api/v1/library/export", lib.Export)
	mux.HandleFunc("/api/v1/library/archive", lib.Archive)
	mux.HandleFunc("/api/v1/library/archive/{id}", lib.ArchiveStatus)
	mux.HandleFunc("/api/v1/collections", lib.Collections)

	mux.HandleFunc("/api/v1/projects", projects.Projects)
	mux.HandleFunc("/api/v1/templates/{key}", projects.FromTemplate)
	mux.HandleFunc("/api/v1/projects/{id}", projects.Get)
	mux.HandleFunc("/api/v1/projects/{id}/report", projects.Report)

	mux.HandleFunc("/api/v1/compliance", compliance.Summary)
	mux.HandleFunc("/api/v1/compliance/attribution", compliance.Attribution)

	mux.HandleFunc("/api/v1/licenses", education.Licenses)
	mux.HandleFunc("/api/v1/reference", education.Reference)

	mux.HandleFunc("/api/v1/reports/{kind}", reports.Get)
}

// Dependencies aggregates collaborators required by HTTP handlers. Archiver
// is nil when no object store is configured.
type Dependencies struct {
	Workspace *workspace.Workspace
	Archiver  Archiver
	Limiter   RateLimiter
}
