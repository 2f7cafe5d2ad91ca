package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/reports"
	"github.com/assetflow/backend/internal/workspace"
)

// ReportHandler serves the reports panel.
type ReportHandler struct {
	Workspace *workspace.Workspace
}

// Get handles GET /api/v1/reports/{kind}?format=json|csv|pdf. csv and pdf
// are served as attachments with the export notification in MessageHeader.
func (h ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	kind, err := reports.ParseKind(r.PathValue("kind"))
	if err != nil {
		respondError(ctx, w, http.StatusNotFound, "unknown report kind")
		return
	}
	format, err := reports.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "format must be json, csv or pdf")
		return
	}

	report, err := h.Workspace.Report(ctx, kind)
	if err != nil {
		logger.Error("build report failed", "kind", kind, "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to build report")
		return
	}

	if format == reports.FormatJSON {
		respondJSON(ctx, w, http.StatusOK, report)
		return
	}

	var buf bytes.Buffer
	if err := reports.Render(ctx, &buf, report, format); err != nil {
		if errors.Is(err, reports.ErrUnknownFormat) {
			respondError(ctx, w, http.StatusBadRequest, "format must be json, csv or pdf")
			return
		}
		logger.Error("render report failed", "kind", kind, "format", format, "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(kind)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set(MessageHeader, reports.ExportMessage(format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("write report body", "error", err)
	}
}
