package handlers

import (
	"context"

	"github.com/assetflow/backend/internal/models"
)

// Archiver schedules background uploads of library exports.
type Archiver interface {
	Enqueue(ctx context.Context, snapshot models.LibraryExport) (models.ArchiveJob, error)
	Job(id string) (models.ArchiveJob, error)
}
