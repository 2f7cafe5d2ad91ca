package reference

import (
	"time"

	"github.com/assetflow/backend/internal/models"
)

const (
	// RemoteVersion marks a dataset assembled from fetched documents.
	RemoteVersion = "remote"
	// FallbackVersion identifies the embedded default dataset. Bump it when
	// the defaults below change.
	FallbackVersion = "fallback-1"
)

// Fallback returns a fresh copy of the embedded default dataset.
func Fallback() Dataset {
	return Dataset{
		Version:  FallbackVersion,
		LoadedAt: time.Now().UTC(),
		Licenses: map[string]models.LicenseDescriptor{
			"CC0": {
				Name:                 "Public Domain",
				AttributionRequired:  false,
				CommercialUse:        true,
				ModificationsAllowed: boolPtr(true),
			},
		},
		AssetSources: AssetSources{
			"images": {
				"Unsplash": {
					LicenseType:          "Unsplash License",
					AttributionRequired:  false,
					CommercialUse:        true,
					ModificationsAllowed: true,
					Description:          "High-quality photographs, 6M+ images",
				},
			},
		},
		Checklist: ComplianceChecklist{
			"before_use": {
				"Verify the license type and terms",
				"Check attribution requirements",
			},
		},
		Categories: ContentCategories{
			"social_media": {
				Platforms:  []string{"Instagram", "Facebook", "Twitter"},
				AssetTypes: []string{"Images", "Videos"},
			},
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}
