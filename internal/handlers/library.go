package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/assetflow/backend/internal/exports"
	"github.com/assetflow/backend/internal/library"
	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/models"
	"github.com/assetflow/backend/internal/workspace"
)

const (
	messageAssetSaved        = "Asset saved to library"
	messageAssetAlreadySaved = "Asset already in library"
	messageCollectionCreated = "Collection created successfully"
)

// LibraryHandler serves the personal library, collections and exports.
type LibraryHandler struct {
	Workspace *workspace.Workspace
	Archiver  Archiver
	Limiter   RateLimiter
}

// Overview handles GET /api/v1/library.
func (h LibraryHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lib := h.Workspace.Library
	respondJSON(r.Context(), w, http.StatusOK, libraryResponse{
		Stats:       h.Workspace.Stats(),
		Recent:      lib.Recent(workspace.RecentLimit),
		Collections: lib.Collections(),
	})
}

// SaveAsset handles POST /api/v1/library/assets. Saving an asset twice
// answers 200 with the existing entry.
func (h LibraryHandler) SaveAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !allowRequest(h.Limiter, w, r, "library") {
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req saveAssetRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.Warn("invalid save payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.AssetID = strings.TrimSpace(req.AssetID)
	if req.AssetID == "" {
		respondError(ctx, w, http.StatusBadRequest, "assetId is required")
		return
	}

	saved, created, err := h.Workspace.Library.SaveAsset(req.AssetID)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "asset not found")
			return
		}
		logger.Error("save asset failed", "assetId", req.AssetID, "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to save asset")
		return
	}

	status, message := http.StatusCreated, messageAssetSaved
	if !created {
		status, message = http.StatusOK, messageAssetAlreadySaved
	}
	respondJSON(ctx, w, status, savedAssetResponse{Asset: saved, Message: message})
}

// Collections handles GET and POST /api/v1/collections.
func (h LibraryHandler) Collections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		respondJSON(ctx, w, http.StatusOK, map[string]any{"collections": h.Workspace.Library.Collections()})
	case http.MethodPost:
		if !allowRequest(h.Limiter, w, r, "collections") {
			return
		}

		var req createCollectionRequest
		if err := decodeBody(w, r, &req); err != nil {
			logging.FromContext(ctx).Warn("invalid collection payload", "error", err)
			respondError(ctx, w, http.StatusBadRequest, "invalid request body")
			return
		}

		c, err := h.Workspace.Library.CreateCollection(req.Name, req.Description, req.Type)
		if err != nil {
			if errors.Is(err, library.ErrNameRequired) {
				respondError(ctx, w, http.StatusBadRequest, "collection name is required")
				return
			}
			respondError(ctx, w, http.StatusInternalServerError, "failed to create collection")
			return
		}

		respondJSON(ctx, w, http.StatusCreated, collectionResponse{Collection: c, Message: messageCollectionCreated})
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// Export handles GET /api/v1/library/export and offers the snapshot as a
// file download.
func (h LibraryHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", models.LibraryExportFilename))
	respondJSON(r.Context(), w, http.StatusOK, h.Workspace.Library.Export())
}

// Archive handles POST /api/v1/library/archive and queues an upload of the
// current export to object storage.
func (h LibraryHandler) Archive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !allowRequest(h.Limiter, w, r, "archive") {
		return
	}

	ctx := r.Context()
	if h.Archiver == nil {
		respondError(ctx, w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	job, err := h.Archiver.Enqueue(ctx, h.Workspace.Library.Export())
	if err != nil {
		if errors.Is(err, exports.ErrStorageUnavailable) {
			respondError(ctx, w, http.StatusServiceUnavailable, "object storage is not configured")
			return
		}
		logging.FromContext(ctx).Error("enqueue library archive", "error", err)
		respondError(ctx, w, http.StatusServiceUnavailable, "archive queue unavailable")
		return
	}

	w.Header().Set("Location", "/api/v1/library/archive/"+job.ID)
	respondJSON(ctx, w, http.StatusAccepted, job)
}

// ArchiveStatus handles GET /api/v1/library/archive/{id}.
func (h LibraryHandler) ArchiveStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	if h.Archiver == nil {
		respondError(ctx, w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	job, err := h.Archiver.Job(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, exports.ErrJobNotFound) {
			respondError(ctx, w, http.StatusNotFound, "archive job not found")
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, "failed to load archive job")
		return
	}

	respondJSON(ctx, w, http.StatusOK, job)
}

type libraryResponse struct {
	Stats       workspace.Stats     `json:"stats"`
	Recent      []models.SavedAsset `json:"recent"`
	Collections []models.Collection `json:"collections"`
}

type saveAssetRequest struct {
	AssetID string `json:"assetId"`
}

type savedAssetResponse struct {
	Asset   models.SavedAsset `json:"asset"`
	Message string            `json:"message"`
}

type createCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type collectionResponse struct {
	Collection models.Collection `json:"collection"`
	Message    string            `json:"message"`
}
