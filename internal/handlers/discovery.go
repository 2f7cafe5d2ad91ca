package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/assetflow/backend/internal/catalog"
	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/workspace"
)

// DiscoveryHandler serves the search and browse panel.
type DiscoveryHandler struct {
	Workspace *workspace.Workspace
}

// List handles GET /api/v1/assets and returns the current window.
func (h DiscoveryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	h.respondPage(r.Context(), w, h.Workspace.Discovery.Current())
}

// Search handles POST /api/v1/assets/search.
func (h DiscoveryHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req searchRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.Warn("invalid search payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.Workspace.Discovery.Search(ctx, req.Query)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("search abandoned", "query", req.Query, "error", err)
			return
		}
		logger.Error("search failed", "query", req.Query, "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "search failed")
		return
	}

	h.respondPage(ctx, w, page)
}

// Filters handles POST /api/v1/assets/filters.
func (h DiscoveryHandler) Filters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var filters catalog.Filters
	if err := decodeBody(w, r, &filters); err != nil {
		logging.FromContext(ctx).Warn("invalid filter payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.respondPage(ctx, w, h.Workspace.Discovery.ApplyFilters(filters))
}

// More handles POST /api/v1/assets/more and extends the window by one page.
func (h DiscoveryHandler) More(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	h.respondPage(r.Context(), w, h.Workspace.Discovery.LoadMore())
}

// Preview handles GET /api/v1/assets/{id}.
func (h DiscoveryHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	preview, err := h.Workspace.Preview(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, workspace.ErrAssetNotFound) {
			respondError(ctx, w, http.StatusNotFound, "asset not found")
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, "failed to load asset")
		return
	}

	respondJSON(ctx, w, http.StatusOK, preview)
}

func (h DiscoveryHandler) respondPage(ctx context.Context, w http.ResponseWriter, page catalog.Page) {
	query, filters := h.Workspace.Discovery.State()
	respondJSON(ctx, w, http.StatusOK, pageResponse{Page: page, Query: query, Filters: filters})
}

type searchRequest struct {
	Query string `json:"query"`
}

type pageResponse struct {
	catalog.Page
	Query   string          `json:"query"`
	Filters catalog.Filters `json:"filters"`
}
