package handlers

import (
	"errors"
	"net/http"

	"github.com/assetflow/backend/internal/library"
	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/models"
	"github.com/assetflow/backend/internal/reports"
	"github.com/assetflow/backend/internal/workspace"
)

// ProjectHandler serves the projects panel.
type ProjectHandler struct {
	Workspace *workspace.Workspace
	Limiter   RateLimiter
}

// Projects handles GET and POST /api/v1/projects.
func (h ProjectHandler) Projects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		respondJSON(ctx, w, http.StatusOK, projectListResponse{
			Projects:  h.Workspace.Library.Projects(),
			Templates: library.Templates(),
		})
	case http.MethodPost:
		if !allowRequest(h.Limiter, w, r, "projects") {
			return
		}

		var req createProjectRequest
		if err := decodeBody(w, r, &req); err != nil {
			logging.FromContext(ctx).Warn("invalid project payload", "error", err)
			respondError(ctx, w, http.StatusBadRequest, "invalid request body")
			return
		}

		p, err := h.Workspace.Library.CreateProject(req.Name)
		if err != nil {
			if errors.Is(err, library.ErrNameRequired) {
				respondError(ctx, w, http.StatusBadRequest, "project name is required")
				return
			}
			respondError(ctx, w, http.StatusInternalServerError, "failed to create project")
			return
		}

		respondJSON(ctx, w, http.StatusCreated, projectResponse{Project: p, Message: "Project created: " + p.Name})
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// FromTemplate handles POST /api/v1/templates/{key}.
func (h ProjectHandler) FromTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !allowRequest(h.Limiter, w, r, "projects") {
		return
	}

	ctx := r.Context()
	p, err := h.Workspace.Library.CreateProjectFromTemplate(r.PathValue("key"))
	if err != nil {
		if errors.Is(err, library.ErrUnknownTemplate) {
			respondError(ctx, w, http.StatusNotFound, "unknown project template")
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, "failed to create project")
		return
	}

	respondJSON(ctx, w, http.StatusCreated, projectResponse{Project: p, Message: "Created project from template: " + p.Name})
}

// Get handles GET /api/v1/projects/{id}.
func (h ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	p, err := h.Workspace.Library.Project(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "project not found")
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, "failed to load project")
		return
	}

	respondJSON(ctx, w, http.StatusOK, projectResponse{Project: p, Message: "Opening project: " + p.Name})
}

// Report handles GET /api/v1/projects/{id}/report.
func (h ProjectHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := r.PathValue("id")
	p, err := h.Workspace.Library.Project(id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "project not found")
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, "failed to load project")
		return
	}

	report, err := h.Workspace.ProjectReport(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Error("project report failed", "projectId", id, "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to build report")
		return
	}

	respondJSON(ctx, w, http.StatusOK, reportResponse{
		Report:  report,
		Message: "Generating compliance report for: " + p.Name,
	})
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type projectListResponse struct {
	Projects  []models.Project          `json:"projects"`
	Templates []library.ProjectTemplate `json:"templates"`
}

type projectResponse struct {
	Project models.Project `json:"project"`
	Message string         `json:"message"`
}

type reportResponse struct {
	Report  reports.Report `json:"report"`
	Message string         `json:"message"`
}
