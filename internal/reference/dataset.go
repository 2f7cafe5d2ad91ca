package reference

import (
	"sort"
	"time"

	"github.com/assetflow/backend/internal/models"
)

// SourceTerms describes how a stock media provider licenses its content.
type SourceTerms struct {
	LicenseType          string `json:"license_type" yaml:"license_type"`
	AttributionRequired  bool   `json:"attribution_required" yaml:"attribution_required"`
	CommercialUse        bool   `json:"commercial_use" yaml:"commercial_use"`
	ModificationsAllowed bool   `json:"modifications_allowed" yaml:"modifications_allowed"`
	Description          string `json:"description" yaml:"description"`
}

// AssetSources maps a media kind (images, videos, ...) to its providers.
type AssetSources map[string]map[string]SourceTerms

// ComplianceChecklist maps a workflow phase to its checklist items.
type ComplianceChecklist map[string][]string

// ContentCategory lists where a category of content is published.
type ContentCategory struct {
	Platforms  []string `json:"platforms" yaml:"platforms"`
	AssetTypes []string `json:"asset_types" yaml:"asset_types"`
}

// ContentCategories is the content taxonomy keyed by category.
type ContentCategories map[string]ContentCategory

// Dataset holds the four reference tables. It is read-only once loaded.
type Dataset struct {
	Version      string                              `json:"version"`
	LoadedAt     time.Time                           `json:"loadedAt"`
	Licenses     map[string]models.LicenseDescriptor `json:"licenses"`
	AssetSources AssetSources                        `json:"assetSources"`
	Checklist    ComplianceChecklist                 `json:"complianceChecklist"`
	Categories   ContentCategories                   `json:"contentCategories"`
}

// IsFallback reports whether the dataset came from the embedded defaults.
func (d Dataset) IsFallback() bool {
	return d.Version != RemoteVersion
}

// LicenseCodes returns the license table keys in sorted order.
func (d Dataset) LicenseCodes() []string {
	codes := make([]string, 0, len(d.Licenses))
	for code := range d.Licenses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
