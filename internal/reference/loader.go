package reference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/models"
)

// Load fetches all four documents concurrently. Any failure discards every
// fetched table and returns the complete embedded fallback; a partially
// merged dataset is never produced. A nil source selects the fallback
// without fetching.
func Load(ctx context.Context, src Source) Dataset {
	if src == nil {
		return Fallback()
	}

	ctx, span := logging.StartSpan(ctx, "reference.load")
	defer span.End()

	ds, err := fetchAll(ctx, src)
	if err != nil {
		span.Fail(err)
		logging.FromContext(ctx).Warn("reference data unavailable, using embedded defaults",
			"error", err, "version", FallbackVersion)
		return Fallback()
	}

	logging.FromContext(ctx).Info("reference data loaded",
		"licenses", len(ds.Licenses), "categories", len(ds.Categories))
	return ds
}

func fetchAll(ctx context.Context, src Source) (Dataset, error) {
	var (
		licenses   map[string]models.LicenseDescriptor
		sources    AssetSources
		checklist  ComplianceChecklist
		categories ContentCategories
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetchDocument(gctx, src, DocumentLicenses, &licenses) })
	g.Go(func() error { return fetchDocument(gctx, src, DocumentAssetSources, &sources) })
	g.Go(func() error { return fetchDocument(gctx, src, DocumentComplianceChecklist, &checklist) })
	g.Go(func() error { return fetchDocument(gctx, src, DocumentContentCategories, &categories) })

	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}

	return Dataset{
		Version:      RemoteVersion,
		LoadedAt:     time.Now().UTC(),
		Licenses:     licenses,
		AssetSources: sources,
		Checklist:    checklist,
		Categories:   categories,
	}, nil
}

func fetchDocument(ctx context.Context, src Source, doc Document, out any) error {
	data, err := src.Fetch(ctx, doc)
	if err != nil {
		return err
	}
	return decodeDocument(doc, data, out)
}

// decodeDocument parses a JSON object or falls back to YAML for anything
// else, so hand-written reference files can use either.
func decodeDocument(doc Document, data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("decode %s: empty document", doc)
	}

	var err error
	if trimmed[0] == '{' || trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, out)
	} else {
		err = yaml.Unmarshal(trimmed, out)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", doc, err)
	}
	return nil
}
