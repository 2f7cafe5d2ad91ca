// Package workspace assembles the catalog, reference data, library and
// compliance engine into one application-state object shared by the HTTP
// handlers and the CLI.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assetflow/backend/internal/catalog"
	"github.com/assetflow/backend/internal/compliance"
	"github.com/assetflow/backend/internal/library"
	"github.com/assetflow/backend/internal/licensing"
	"github.com/assetflow/backend/internal/models"
	"github.com/assetflow/backend/internal/reference"
	"github.com/assetflow/backend/internal/reports"
)

// RecentLimit is the number of assets shown in the library's recent list.
const RecentLimit = 5

// ErrAssetNotFound indicates a catalog id that does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// Options tune a Workspace. Zero values select the defaults.
type Options struct {
	PageSize    int
	SearchDelay time.Duration
	Now         func() time.Time
	NewID       func() string
}

// Workspace is the state of a single AssetFlow session.
type Workspace struct {
	Dataset    reference.Dataset
	Licenses   *licensing.Resolver
	Catalog    *catalog.Catalog
	Discovery  *catalog.Discovery
	Library    *library.Store
	Compliance *compliance.Engine
	Reports    *reports.Builder
}

// New wires a workspace over a loaded dataset and catalog.
func New(ds reference.Dataset, cat *catalog.Catalog, opts Options) *Workspace {
	resolver := licensing.NewResolver(ds.Licenses)
	engine := compliance.NewEngine(resolver)

	var storeOpts []library.Option
	if opts.Now != nil {
		storeOpts = append(storeOpts, library.WithClock(opts.Now))
	}
	if opts.NewID != nil {
		storeOpts = append(storeOpts, library.WithIDGenerator(opts.NewID))
	}

	return &Workspace{
		Dataset:    ds,
		Licenses:   resolver,
		Catalog:    cat,
		Discovery:  catalog.NewDiscovery(cat, opts.PageSize, opts.SearchDelay),
		Library:    library.NewStore(cat, storeOpts...),
		Compliance: engine,
		Reports:    reports.NewBuilder(engine, resolver, opts.Now),
	}
}

// Stats is the library panel summary.
type Stats struct {
	TotalAssets      int `json:"totalAssets"`
	TotalCollections int `json:"totalCollections"`
	ComplianceScore  int `json:"complianceScore"`
}

// Stats summarizes the library using the library-panel score.
func (w *Workspace) Stats() Stats {
	saved := w.Library.SavedAssets()
	return Stats{
		TotalAssets:      len(saved),
		TotalCollections: len(w.Library.Collections()),
		ComplianceScore:  w.Compliance.LibraryScore(saved),
	}
}

// Preview is the asset detail view.
type Preview struct {
	Asset    models.Asset         `json:"asset"`
	License  licensing.License    `json:"licenseInfo"`
	Warnings []compliance.Warning `json:"warnings"`
}

// Preview resolves the license and compliance warnings for a catalog asset.
func (w *Workspace) Preview(id string) (Preview, error) {
	asset, ok := w.Catalog.Get(id)
	if !ok {
		return Preview{}, fmt.Errorf("%w: %q", ErrAssetNotFound, id)
	}
	return Preview{
		Asset:    asset,
		License:  w.licenseInfo(asset.License),
		Warnings: compliance.Warnings(asset),
	}, nil
}

func (w *Workspace) licenseInfo(code string) licensing.License {
	d := w.Licenses.Resolve(code)
	return licensing.License{Code: code, LicenseDescriptor: d, ModificationsAllowed: d.AllowsModifications()}
}

// ComplianceSummary is the compliance dashboard.
type ComplianceSummary struct {
	compliance.Metrics
	Checklist reference.ComplianceChecklist `json:"checklist"`
}

// ComplianceSummary computes the dashboard metrics over the saved assets.
func (w *Workspace) ComplianceSummary() ComplianceSummary {
	return ComplianceSummary{
		Metrics:   w.Compliance.Metrics(w.Library.SavedAssets()),
		Checklist: w.Dataset.Checklist,
	}
}

// Attribution renders the credit text for the saved assets. format is parsed
// with compliance.ParseFormat.
func (w *Workspace) Attribution(format string) (string, error) {
	f, err := compliance.ParseFormat(format)
	if err != nil {
		return "", err
	}
	return w.Compliance.AttributionText(w.Library.SavedAssets(), f), nil
}

// Report builds a library-wide report of the given kind.
func (w *Workspace) Report(ctx context.Context, kind reports.Kind) (reports.Report, error) {
	return w.Reports.Build(ctx, kind, reports.Input{
		Saved:       w.Library.SavedAssets(),
		Collections: len(w.Library.Collections()),
		Projects:    len(w.Library.Projects()),
	})
}

// ProjectReport builds the compliance report for a single project.
func (w *Workspace) ProjectReport(ctx context.Context, id string) (reports.Report, error) {
	p, err := w.Library.Project(id)
	if err != nil {
		return reports.Report{}, err
	}
	return w.Reports.Project(ctx, p, w.Library.SavedAssets()), nil
}
