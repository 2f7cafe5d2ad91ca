package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/assetflow/backend/internal/catalog"
	"github.com/assetflow/backend/internal/config"
	"github.com/assetflow/backend/internal/exports"
	"github.com/assetflow/backend/internal/handlers"
	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/middleware"
	"github.com/assetflow/backend/internal/reference"
	"github.com/assetflow/backend/internal/storage"
	"github.com/assetflow/backend/internal/workspace"
)

// referenceSource selects where startup reference data comes from. The
// embedded source is represented by a nil Source.
func referenceSource(ctx context.Context, cfg config.Config) (reference.Source, error) {
	rc := cfg.Reference
	switch rc.Source {
	case config.ReferenceSourceHTTP, "":
		return reference.NewHTTPSource(map[reference.Document]string{
			reference.DocumentLicenses:            rc.LicensesURL,
			reference.DocumentAssetSources:        rc.AssetSourcesURL,
			reference.DocumentComplianceChecklist: rc.ComplianceChecklistURL,
			reference.DocumentContentCategories:   rc.ContentCategoriesURL,
		}, rc.Timeout), nil
	case config.ReferenceSourceS3:
		client, err := storage.NewClient(ctx, cfg.ObjectStore)
		if err != nil {
			return nil, fmt.Errorf("reference s3 source: %w", err)
		}
		return reference.NewS3Source(client, cfg.ObjectStore.Bucket, rc.Prefix), nil
	case config.ReferenceSourceFile:
		return reference.FileSource{Dir: rc.Dir}, nil
	case config.ReferenceSourceEmbedded:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown reference source %q", rc.Source)
	}
}

// buildWorkspace loads reference data and assembles the session state. It
// never fails: any reference problem yields the embedded dataset.
func buildWorkspace(ctx context.Context, cfg config.Config) *workspace.Workspace {
	src, err := referenceSource(ctx, cfg)
	if err != nil {
		logging.FromContext(ctx).Warn("reference source unavailable, using embedded defaults", "error", err)
		src = nil
	}

	loadCtx := ctx
	if cfg.Reference.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, cfg.Reference.Timeout)
		defer cancel()
	}
	ds := reference.Load(loadCtx, src)

	return workspace.New(ds, catalog.Sample(), workspace.Options{
		PageSize:    cfg.PageSize,
		SearchDelay: cfg.SearchDelay,
	})
}

// buildDependencies wires together concrete implementations used by the HTTP
// handlers. The returned cleanup drains the archive worker pool.
func buildDependencies(ctx context.Context, cfg config.Config, ws *workspace.Workspace, logger *slog.Logger) (handlers.Dependencies, func(context.Context) error, error) {
	rl := cfg.RateLimit
	deps := handlers.Dependencies{
		Workspace: ws,
		Limiter:   middleware.NewKeyedRateLimiter(rl.Requests, rl.Window, rl.Burst, rl.TTL),
	}
	noop := func(context.Context) error { return nil }

	if !cfg.ObjectStore.Enabled() {
		logger.Info("object store not configured, library archives disabled")
		return deps, noop, nil
	}

	client, err := storage.NewClient(ctx, cfg.ObjectStore)
	if err != nil {
		return handlers.Dependencies{}, nil, err
	}

	archiver := exports.NewArchiver(storage.NewS3Storage(client, cfg.ObjectStore), exports.Config{
		QueueSize: cfg.Archive.QueueSize,
		Workers:   cfg.Archive.Workers,
		Timeout:   cfg.Archive.Timeout,
	}, logger)
	deps.Archiver = archiver

	return deps, archiver.Shutdown, nil
}
