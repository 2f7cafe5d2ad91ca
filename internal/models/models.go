package models

import "time"

// Asset is a single discoverable media item. License flags are not stored on
// the asset; they are always derived from License through the resolver.
type Asset struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Source      string   `json:"source"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	License     string   `json:"license"`
	URL         string   `json:"url"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
}

// HasTag reports whether the asset carries the exact tag.
func (a Asset) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// LicenseDescriptor is the normalized rights metadata for a license code.
type LicenseDescriptor struct {
	Name                 string `json:"name" yaml:"name"`
	AttributionRequired  bool   `json:"attribution_required" yaml:"attribution_required"`
	CommercialUse        bool   `json:"commercial_use" yaml:"commercial_use"`
	ModificationsAllowed *bool  `json:"modifications_allowed,omitempty" yaml:"modifications_allowed,omitempty"`
	ShareAlikeRequired   bool   `json:"share_alike_required,omitempty" yaml:"share_alike_required,omitempty"`
	Description          string `json:"description,omitempty" yaml:"description,omitempty"`
}

// AllowsModifications treats an absent flag as permission.
func (d LicenseDescriptor) AllowsModifications() bool {
	return d.ModificationsAllowed == nil || *d.ModificationsAllowed
}

// DefaultCollectionID identifies the collection every saved asset joins.
const DefaultCollectionID = "default"

// SavedAsset is an asset that has been added to the personal library.
type SavedAsset struct {
	Asset
	SavedAt     time.Time `json:"savedAt"`
	Collections []string  `json:"collections"`
}

// Collection is a user-defined named grouping of saved assets.
type Collection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Assets      []string `json:"assets"`
}

// ProjectStatus tracks the compliance state of a project.
type ProjectStatus string

const (
	ProjectStatusCompliant    ProjectStatus = "compliant"
	ProjectStatusNonCompliant ProjectStatus = "non-compliant"
	ProjectStatusPending      ProjectStatus = "pending"
)

// Project associates saved assets with a platform or campaign.
type Project struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Platform string        `json:"platform"`
	Status   ProjectStatus `json:"status"`
	Assets   []string      `json:"assets"`
	Created  time.Time     `json:"created"`
	Type     string        `json:"type"`
}

// LibraryExport is the downloadable snapshot of the library.
type LibraryExport struct {
	Collections []Collection `json:"collections"`
	Assets      []SavedAsset `json:"assets"`
	Projects    []Project    `json:"projects"`
	Exported    time.Time    `json:"exported"`
}

// LibraryExportFilename is the attachment name offered for library exports.
const LibraryExportFilename = "assetflow-library-export.json"

const (
	ArchiveStatusPending = "pending"
	ArchiveStatusReady   = "ready"
	ArchiveStatusFailed  = "failed"
)

// ArchiveJob records the progress of a library export upload.
type ArchiveJob struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Size      int64     `json:"size,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
